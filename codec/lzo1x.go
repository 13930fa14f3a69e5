// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package codec

import (
	"math"

	"github.com/pkg/errors"

	"github.com/woozymasta/minilzo"
)

// LZO1XCompressor implements Compressor with minilzo's framed LZO1X-1 stream.
type LZO1XCompressor struct {
	maxLength uint64
}

// NewLZO1XCompressor creates a new LZO1XCompressor with the specified max length.
func NewLZO1XCompressor(maxLength uint64) *LZO1XCompressor {
	return &LZO1XCompressor{maxLength: maxLength}
}

// Name returns "lzo1x".
func (c *LZO1XCompressor) Name() string {
	return NameLZO1X
}

// Compress compresses the input data into a length-prefixed LZO1X stream.
func (c *LZO1XCompressor) Compress(data []byte) ([]byte, error) {
	framed, err := minilzo.CompressFramed(data)
	if err != nil {
		return nil, errors.Wrap(err, "lzo1x compress")
	}

	return framed, nil
}

// Decompress decodes a framed stream, rejecting headers above MaxLength
// before the output is allocated.
func (c *LZO1XCompressor) Decompress(data []byte) ([]byte, error) {
	limit := 0
	if c.maxLength > 0 {
		limit = int(min(c.maxLength, uint64(math.MaxInt))) //nolint:gosec // G115: clamped
	}

	out, err := minilzo.DecompressFramedLimit(data, limit)
	if errors.Is(err, minilzo.ErrFrameTooLarge) {
		return nil, errors.Wrapf(ErrMaxLengthExceeded, "lzo1x: %v", err)
	}

	if err != nil {
		return nil, errors.Wrap(err, "lzo1x decompress")
	}

	return out, nil
}

// Extension returns ".lzo".
func (c *LZO1XCompressor) Extension() string {
	return ".lzo"
}

// MaxLength returns the maximum allowed length for decompressed data.
func (c *LZO1XCompressor) MaxLength() uint64 {
	return c.maxLength
}

// Ensure LZO1XCompressor implements Compressor.
var _ Compressor = (*LZO1XCompressor)(nil)
