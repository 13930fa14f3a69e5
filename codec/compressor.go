// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

// Package codec adapts whole-buffer compressors, minilzo's framed LZO1X among
// them, to one interface so host programs can pick an algorithm by name or
// file extension.
package codec

import "github.com/pkg/errors"

// Compressor provides compression and decompression functionality.
type Compressor interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// Compress compresses the input data into a self-contained buffer.
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses the input data.
	Decompress(data []byte) ([]byte, error)

	// Extension returns the file extension, including the dot.
	Extension() string

	// MaxLength returns the maximum allowed length for decompressed data.
	// Returns 0 if there is no limit.
	MaxLength() uint64
}

// ErrMaxLengthExceeded is returned when decompressed data would exceed MaxLength.
var ErrMaxLengthExceeded = errors.New("decompressed data exceeds max length")

// checkLength rejects a declared decompressed length above maxLength (0 = no limit).
func checkLength(declared int, maxLength uint64) error {
	if maxLength > 0 && uint64(declared) > maxLength {
		return errors.Wrapf(ErrMaxLengthExceeded, "%d > %d", declared, maxLength)
	}

	return nil
}
