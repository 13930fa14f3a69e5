// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// copyBackRef replays length bytes found dist bytes behind pos in dst and
// returns the position after them.
func copyBackRef(dst []byte, pos, dist, length int) (int, error) {
	from := pos - dist
	switch {
	case dist <= 0 || from < 0:
		return pos, ErrLookbehindOverrun
	case length > len(dst)-pos:
		return pos, ErrOutputOverrun
	}

	// An overlapping span repeats with period dist; dst[from:pos] always holds
	// a whole number of periods, so each pass can copy all of it.
	end := pos + length
	for pos < end {
		pos += copy(dst[pos:end], dst[from:pos])
	}

	return end, nil
}
