// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// matchFinder keeps one prior position per hash slot for a single Compress call.
// Slots hold position+1 so the zero value means empty.
type matchFinder struct {
	in   []byte
	dict [dictSize]int
}

// newMatchFinder returns a finder with an empty table over in.
func newMatchFinder(in []byte) *matchFinder {
	return &matchFinder{in: in}
}

// candidate reads slot index and validates the stored position against pos.
// It returns the candidate position and distance, or ok=false when the slot
// is empty or the distance is not representable.
func (mf *matchFinder) candidate(pos, index int) (matchPos, matchOffset int, ok bool) {
	stored := mf.dict[index]
	if stored == 0 {
		return 0, 0, false
	}

	matchPos = stored - 1
	matchOffset = pos - matchPos
	if matchOffset <= 0 || matchOffset > maxOffsetM4 {
		return 0, 0, false
	}

	return matchPos, matchOffset, true
}

// find probes the table for pos, records pos in the last probed slot and
// reports a match whose first three bytes agree with in[pos:].
func (mf *matchFinder) find(pos int) (matchPos, matchOffset int, ok bool) {
	in := mf.in
	index := dictIndex(in, pos)

	matchPos, matchOffset, ok = mf.candidate(pos, index)
	if ok && matchOffset > maxOffsetM2 && in[matchPos+3] != in[pos+3] {
		index = dictRehash(index)
		matchPos, matchOffset, ok = mf.candidate(pos, index)
		if ok && matchOffset > maxOffsetM2 && in[matchPos+3] != in[pos+3] {
			ok = false
		}
	}

	mf.dict[index] = pos + 1

	if !ok ||
		in[matchPos] != in[pos] ||
		in[matchPos+1] != in[pos+1] ||
		in[matchPos+2] != in[pos+2] {
		return 0, 0, false
	}

	return matchPos, matchOffset, true
}

// extend returns the end of the match starting at pos against matchPos.
// Bytes 3..8 are compared first; a match that survives them grows until the
// input ends or the bytes differ.
func (mf *matchFinder) extend(pos, matchPos int) int {
	in := mf.in

	for i := minMatchLen; i <= maxLenM2; i++ {
		if in[matchPos+i] != in[pos+i] {
			return pos + i
		}
	}

	end := pos + maxLenM2 + 1
	m := matchPos + maxLenM2 + 1
	for end < len(in) && in[m] == in[end] {
		m++
		end++
	}

	return end
}
