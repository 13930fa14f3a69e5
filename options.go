// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/minilzo

package minilzo

// DecompressOptions configures decompression.
// OutLen is required for raw streams; MaxInputSize and MaxOutLen bound reader
// and framed input.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	// Framed decoding takes the size from the header and ignores it.
	OutLen int
	// MaxInputSize limits how many bytes the reader front ends may read (0 = no limit).
	MaxInputSize int
	// MaxOutLen rejects frame headers declaring a larger size before allocating (0 = no limit).
	MaxOutLen int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
