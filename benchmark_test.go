// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzo benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"random-64k":      randomBytes(42, 1<<16),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for b.Loop() {
				_ = Compress(inputData)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		compressedData := Compress(inputData)
		if _, err := Decompress(compressedData, DefaultDecompressOptions(len(inputData))); err != nil {
			b.Fatalf("setup Decompress failed for %s: %v", inputName, err)
		}

		b.Run(inputName, func(b *testing.B) {
			dst := make([]byte, len(inputData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for b.Loop() {
				if _, err := DecompressInto(compressedData, dst); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkFramedRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for b.Loop() {
		framed, err := CompressFramed(inputData)
		if err != nil {
			b.Fatalf("CompressFramed failed: %v", err)
		}

		if _, err := DecompressFramed(framed); err != nil {
			b.Fatalf("DecompressFramed failed: %v", err)
		}
	}
}
