// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"io"

	"github.com/pkg/errors"
)

// Decompress decompresses an LZO1X stream into a new buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil or OutLen is negative.
// The stream must fill the buffer exactly and end with its last byte.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	return DecompressInto(src, make([]byte, opts.OutLen))
}

// DecompressInto decompresses src into the caller-provided dst with the same
// strict rules as Decompress. It returns dst on success.
func DecompressInto(src, dst []byte) ([]byte, error) {
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	if inConsumed != len(src) {
		return nil, errors.Wrapf(ErrInputNotConsumed, "%d trailing bytes after end marker", len(src)-inConsumed)
	}

	if outWritten != len(dst) {
		return nil, errors.Wrapf(ErrOutputUnderrun, "decoded %d of %d bytes", outWritten, len(dst))
	}

	return dst, nil
}

// DecompressN decompresses an LZO1X stream and returns the decoded slice,
// the number of input bytes consumed (nRead), and an error.
// Decoding stops at the end marker: trailing input is left alone and the
// result may be shorter than OutLen. nRead is 0 on error.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	return DecompressNInto(src, make([]byte, opts.OutLen))
}

// DecompressNInto is DecompressN writing into the caller-provided dst.
// The returned slice aliases dst.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := readLimited(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}

// decompressCore decompresses LZO1X data from src into dst using the decoder state machine.
// It returns (bytes written, input bytes consumed, nil) once the end marker is read.
// On error it returns (0, 0, err).
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	d := newDecoder(src, dst)
	if err := d.run(); err != nil {
		return 0, 0, err
	}

	return d.outPos, d.inPos, nil
}

// readLimited reads r to EOF, failing with ErrInputTooLarge past limit bytes (0 = no limit).
func readLimited(r io.Reader, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read compressed input")
	}

	if limit > 0 && len(src) > limit {
		return nil, errors.Wrapf(ErrInputTooLarge, "more than %d bytes", limit)
	}

	return src, nil
}
