// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// LZO1X format constants: M1/M2/M3/M4 offset and length bounds, and dictionary parameters.

// Match offset bounds (max distance for each match type).
const (
	maxOffsetM2 = 0x0800
	maxOffsetM3 = 0x4000
	maxOffsetM4 = 0xbfff
)

// Match length bounds per type.
const (
	minMatchLen = 3
	maxLenM2    = 8
	maxLenM3    = 33
	maxLenM4    = 9
)

// Instruction byte markers for match types.
const (
	markerM2 = 64
	markerM3 = 32
	markerM4 = 16
)

// Literal run encodings.
const (
	firstLiteralBias   = 17  // first-run opcode is 17+n
	maxFirstLiteralLen = 238 // largest run the 17+n form can carry
	maxShortLiteralLen = 18  // largest run with a one-byte n-3 opcode
	maxTrailingLiteral = 3   // runs folded into the previous match
)

// Dictionary hash parameters used by the compressor.
const (
	dictBits = 14                  // number of bits in the dictionary hash
	dictSize = 1 << dictBits       // number of dictionary slots
	dictMask = dictSize - 1        // mask for the dictionary hash
	dictHigh = (dictMask >> 1) + 1 // high bit for the dictionary hash
)

// Parser window: inputs up to shortInputLen bytes are stored as one literal
// run, and matching stops inputLimitMargin bytes before the end.
const (
	shortInputLen    = maxLenM2 + 5
	inputLimitMargin = maxLenM2 + 5
	firstScanPos     = 4
)

// Stream framing.
const (
	terminatorLen  = 3
	frameHeaderLen = 4

	// maxExpansion bounds output bytes per stream byte: a zero-extended
	// length byte is worth 255 and no instruction yields more per byte.
	maxExpansion = 255
)

// terminator is the end-of-stream instruction: M4 with zero distance.
var terminator = [terminatorLen]byte{markerM4 | 1, 0, 0}
