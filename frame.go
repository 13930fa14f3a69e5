// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"
)

// frameHeader is the length prefix of the framed container.
type frameHeader struct {
	Length uint32
}

// CompressFramed returns the little-endian uint32 length of src followed by Compress(src).
// Fails with ErrInputTooLarge when len(src) does not fit the header.
func CompressFramed(src []byte) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInputTooLarge, "%d bytes cannot be framed", len(src))
	}

	header, err := restruct.Pack(binary.LittleEndian, &frameHeader{Length: uint32(len(src))}) //nolint:gosec // G115: checked above
	if err != nil {
		return nil, errors.Wrap(err, "pack frame header")
	}

	out := make([]byte, 0, len(header)+MaxCompressedLen(len(src)))
	out = append(out, header...)

	return appendCompressed(out, src), nil
}

// FrameLength returns the original length recorded in a framed buffer's header.
func FrameLength(framed []byte) (int, error) {
	if len(framed) < frameHeaderLen {
		return 0, errors.Wrapf(ErrFrameTooShort, "got %d bytes, header needs %d", len(framed), frameHeaderLen)
	}

	var header frameHeader
	if err := restruct.Unpack(framed[:frameHeaderLen], binary.LittleEndian, &header); err != nil {
		return 0, errors.Wrap(err, "unpack frame header")
	}

	if uint64(header.Length) > math.MaxInt {
		return 0, errors.Wrapf(ErrFrameTooLarge, "declared %d bytes", header.Length)
	}

	return int(header.Length), nil
}

// DecompressFramed reads the length header and strictly decompresses the rest of framed.
func DecompressFramed(framed []byte) ([]byte, error) {
	return DecompressFramedLimit(framed, 0)
}

// DecompressFramedLimit is DecompressFramed that rejects headers declaring
// more than maxOutLen bytes (0 = no limit) before allocating the output.
// Headers declaring more than the stream could ever produce fail with
// ErrInputOverrun regardless of the limit.
func DecompressFramedLimit(framed []byte, maxOutLen int) ([]byte, error) {
	outLen, err := FrameLength(framed)
	if err != nil {
		return nil, err
	}

	if maxOutLen > 0 && outLen > maxOutLen {
		return nil, errors.Wrapf(ErrFrameTooLarge, "declared %d bytes, limit %d", outLen, maxOutLen)
	}

	stream := framed[frameHeaderLen:]
	if limit := maxDecodedLen(len(stream)); outLen > limit {
		return nil, errors.Wrapf(ErrInputOverrun, "declared %d bytes, a %d-byte stream yields at most %d", outLen, len(stream), limit)
	}

	return DecompressInto(stream, make([]byte, outLen))
}

// maxDecodedLen returns the most output an n-byte stream can decode to.
func maxDecodedLen(n int) int {
	if n > math.MaxInt/maxExpansion {
		return math.MaxInt
	}

	return n * maxExpansion
}

// DecompressFramedReader reads a whole framed buffer from r and decompresses it.
// opts.MaxInputSize bounds the read and opts.MaxOutLen bounds the header; OutLen is ignored.
func DecompressFramedReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	framed, err := readLimited(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return DecompressFramedLimit(framed, opts.MaxOutLen)
}
