// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// appendLiteralRun appends a literal run and its header encoding.
// Runs of 1..3 bytes after a match are folded into the low two bits of the
// byte before the previous match's last distance byte.
func appendLiteralRun(out []byte, lit []byte) []byte {
	if len(lit) == 0 {
		return out
	}

	switch n := len(lit); {
	case len(out) == 0 && n <= maxFirstLiteralLen:
		out = append(out, opcodeByte(firstLiteralBias+n))
	case n <= maxTrailingLiteral:
		out[len(out)-2] |= opcodeByte(n)
	default:
		out = appendLengthField(out, 0, n-minMatchLen, maxShortLiteralLen-minMatchLen)
	}

	return append(out, lit...)
}

// appendLengthField appends marker carrying n in its low bits when n fits in
// fieldMax. Otherwise the field is left zero and the excess follows as zero
// bytes worth 255 each, closed by a non-zero remainder.
// Literal runs, M3 and M4 share this layout with different field widths.
func appendLengthField(out []byte, marker, n, fieldMax int) []byte {
	if n <= fieldMax {
		return append(out, opcodeByte(marker|n))
	}

	out = append(out, opcodeByte(marker))
	for n -= fieldMax; n > 255; n -= 255 {
		out = append(out, 0)
	}

	return append(out, opcodeByte(n))
}
