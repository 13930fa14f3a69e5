// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// opcodeByte truncates an instruction fragment to the byte written to the stream.
// M4 distances carry bit 14 in the opcode, so the high distance byte relies on this mask.
func opcodeByte(v int) byte {
	// #nosec G115 -- LZO opcodes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
