// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// dictIndex hashes in[pos:pos+4] into a primary dictionary slot.
// Caller guarantees pos+3 < len(in).
func dictIndex(in []byte, pos int) int {
	key := uint32(in[pos+3])
	key = (key << 6) ^ uint32(in[pos+2])
	key = (key << 5) ^ uint32(in[pos+1])
	key = (key << 5) ^ uint32(in[pos+0])

	return int(((0x21 * key) >> 5) & dictMask)
}

// dictRehash returns the secondary slot probed when the primary candidate is
// far away and disagrees on its fourth byte.
func dictRehash(index int) int {
	return (index & (dictMask & 0x7ff)) ^ (dictHigh | 0x1f)
}
