// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package codec

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
)

// BrotliCompressor implements Compressor using a Brotli stream.
type BrotliCompressor struct {
	maxLength uint64
	level     int
}

// NewBrotliCompressor creates a new BrotliCompressor at the default level.
func NewBrotliCompressor(maxLength uint64) *BrotliCompressor {
	return &BrotliCompressor{maxLength: maxLength, level: brotli.DefaultCompression}
}

// Name returns "brotli".
func (c *BrotliCompressor) Name() string {
	return NameBrotli
}

// Compress compresses the input data using Brotli.
func (c *BrotliCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := brotli.NewWriterLevel(&buf, c.level)
	if _, err := writer.Write(data); err != nil {
		return nil, errors.Wrap(err, "brotli compress")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "brotli close")
	}

	return buf.Bytes(), nil
}

// Decompress decompresses the input data. Brotli records no size up front,
// so MaxLength is enforced while reading.
func (c *BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	var reader io.Reader = brotli.NewReader(bytes.NewReader(data))
	if c.maxLength > 0 {
		reader = io.LimitReader(reader, int64(min(c.maxLength, 1<<62))+1) //nolint:gosec // G115: clamped
	}

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "brotli decompress")
	}

	if err := checkLength(len(out), c.maxLength); err != nil {
		return nil, err
	}

	return out, nil
}

// Extension returns ".br".
func (c *BrotliCompressor) Extension() string {
	return ".br"
}

// MaxLength returns the maximum allowed length for decompressed data.
func (c *BrotliCompressor) MaxLength() uint64 {
	return c.maxLength
}

// Ensure BrotliCompressor implements Compressor.
var _ Compressor = (*BrotliCompressor)(nil)
