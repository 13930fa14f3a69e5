// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// MaxCompressedLen returns the worst-case size of Compress output for n input bytes.
func MaxCompressedLen(n int) int {
	return n + n/16 + 64 + terminatorLen
}

// Compress compresses src with LZO1X-1 and returns the raw instruction stream.
// It never fails; inputs of 13 bytes or fewer become a single literal run.
func Compress(src []byte) []byte {
	out := make([]byte, 0, MaxCompressedLen(len(src)))
	return appendCompressed(out, src)
}

// appendCompressed appends the compressed stream for src to out.
// Opcode choices depend on the stream start, not on len(out), so the stream is
// built in the spare capacity of out and then attached.
func appendCompressed(out, src []byte) []byte {
	stream := out[len(out):]

	literalStart := 0
	if len(src) > shortInputLen {
		stream, literalStart = compress1xCore(src, stream)
	}

	stream = appendLiteralRun(stream, src[literalStart:])
	stream = append(stream, terminator[:]...)

	// No copy happens while stream still shares the backing array of out.
	return append(out, stream...)
}
