// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package codec

import (
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// SnappyCompressor implements Compressor using Snappy block compression.
type SnappyCompressor struct {
	maxLength uint64
}

// NewSnappyCompressor creates a new SnappyCompressor with the specified max length.
func NewSnappyCompressor(maxLength uint64) *SnappyCompressor {
	return &SnappyCompressor{maxLength: maxLength}
}

// Name returns "snappy".
func (s *SnappyCompressor) Name() string {
	return NameSnappy
}

// Compress compresses the input data using Snappy.
func (s *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress decompresses the input data using Snappy.
func (s *SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	decodedLen, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get decoded length")
	}

	if err := checkLength(decodedLen, s.maxLength); err != nil {
		return nil, err
	}

	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "snappy decompress")
	}

	return out, nil
}

// Extension returns ".sz".
func (s *SnappyCompressor) Extension() string {
	return ".sz"
}

// MaxLength returns the maximum allowed length for decompressed data.
func (s *SnappyCompressor) MaxLength() uint64 {
	return s.maxLength
}

// Ensure SnappyCompressor implements Compressor.
var _ Compressor = (*SnappyCompressor)(nil)
