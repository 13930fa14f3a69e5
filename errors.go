// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/minilzo

package minilzo

import "github.com/pkg/errors"

// Sentinel errors for decompression and framing.
var (
	// ErrOutputOverrun is returned when an instruction would write past the destination.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrInputOverrun is returned when an instruction needs more input than remains.
	ErrInputOverrun = errors.New("input overrun")
	// ErrLookbehindOverrun is returned when a back-reference points outside the decoded output.
	ErrLookbehindOverrun = errors.New("lookbehind overrun")
	// ErrEOFMarkerNotFound is returned when input runs out before the end-of-stream marker.
	ErrEOFMarkerNotFound = errors.New("eof marker not found")
	// ErrInputNotConsumed is returned when bytes remain after the end-of-stream marker.
	ErrInputNotConsumed = errors.New("input not consumed")
	// ErrOutputUnderrun is returned by strict decoding when the stream ends before filling the destination.
	ErrOutputUnderrun = errors.New("output underrun")

	// ErrOptionsRequired is returned when options are nil or OutLen is negative.
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when input exceeds MaxInputSize or cannot be framed.
	ErrInputTooLarge = errors.New("input too large")
	// ErrFrameTooShort is returned when a framed buffer has no complete length header.
	ErrFrameTooShort = errors.New("frame too short")
	// ErrFrameTooLarge is returned when a frame header declares more than MaxOutLen bytes.
	ErrFrameTooLarge = errors.New("frame length exceeds limit")
)
