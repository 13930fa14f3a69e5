// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package codec

import (
	"encoding/binary"
	"math"

	"github.com/go-restruct/restruct"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// LZ4 block modes stored after the length.
const (
	lz4ModeStored uint8 = iota
	lz4ModeBlock
)

// lz4HeaderLen is the packed size of lz4Header.
const lz4HeaderLen = 5

// lz4Header prefixes every LZ4 block: the block format does not record the
// original size, and incompressible input is stored as is.
type lz4Header struct {
	Length uint32
	Mode   uint8
}

// ErrCorruptHeader is returned when a block header is missing or inconsistent.
var ErrCorruptHeader = errors.New("corrupt block header")

// LZ4Compressor implements Compressor using LZ4 blocks with a length header.
type LZ4Compressor struct {
	maxLength uint64
}

// NewLZ4Compressor creates a new LZ4Compressor with the specified max length.
func NewLZ4Compressor(maxLength uint64) *LZ4Compressor {
	return &LZ4Compressor{maxLength: maxLength}
}

// Name returns "lz4".
func (c *LZ4Compressor) Name() string {
	return NameLZ4
}

// Compress compresses data into one LZ4 block, or stores it when LZ4 cannot shrink it.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, errors.Errorf("lz4: %d bytes exceed block header range", len(data))
	}

	block := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, block, nil)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 compress")
	}

	header := lz4Header{Length: uint32(len(data)), Mode: lz4ModeBlock} //nolint:gosec // G115: checked above
	payload := block[:n]
	if n == 0 || n >= len(data) {
		header.Mode = lz4ModeStored
		payload = data
	}

	out, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return nil, errors.Wrap(err, "pack lz4 header")
	}

	return append(out, payload...), nil
}

// Decompress reads the header, checks MaxLength and restores the block.
func (c *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) < lz4HeaderLen {
		return nil, errors.Wrapf(ErrCorruptHeader, "lz4: %d bytes", len(data))
	}

	var header lz4Header
	if err := restruct.Unpack(data[:lz4HeaderLen], binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "unpack lz4 header")
	}

	if uint64(header.Length) > math.MaxInt {
		return nil, errors.Wrapf(ErrCorruptHeader, "lz4: length %d", header.Length)
	}

	declared := int(header.Length)
	if err := checkLength(declared, c.maxLength); err != nil {
		return nil, err
	}

	payload := data[lz4HeaderLen:]
	switch header.Mode {
	case lz4ModeStored:
		if len(payload) != declared {
			return nil, errors.Wrapf(ErrCorruptHeader, "lz4: stored %d bytes, header says %d", len(payload), declared)
		}

		return append([]byte(nil), payload...), nil

	case lz4ModeBlock:
		out := make([]byte, declared)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, errors.Wrap(err, "lz4 decompress")
		}

		if n != declared {
			return nil, errors.Wrapf(ErrCorruptHeader, "lz4: decoded %d bytes, header says %d", n, declared)
		}

		return out, nil

	default:
		return nil, errors.Wrapf(ErrCorruptHeader, "lz4: unknown mode %d", header.Mode)
	}
}

// Extension returns ".lz4".
func (c *LZ4Compressor) Extension() string {
	return ".lz4"
}

// MaxLength returns the maximum allowed length for decompressed data.
func (c *LZ4Compressor) MaxLength() uint64 {
	return c.maxLength
}

// Ensure LZ4Compressor implements Compressor.
var _ Compressor = (*LZ4Compressor)(nil)
