// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// compress1xCore runs the greedy LZO1X-1 parse over in, appending literal runs
// and matches to out. It returns the extended output and the start of the
// literal tail that still has to be emitted.
func compress1xCore(in, out []byte) ([]byte, int) {
	mf := newMatchFinder(in)
	inputLimit := len(in) - inputLimitMargin
	literalStart := 0
	inputPos := firstScanPos

	for {
		matchPos, matchOffset, ok := mf.find(inputPos)
		if !ok {
			inputPos++
			if inputPos >= inputLimit {
				break
			}

			continue
		}

		out = appendLiteralRun(out, in[literalStart:inputPos])

		matchEnd := mf.extend(inputPos, matchPos)
		out = appendMatch(out, matchOffset, matchEnd-inputPos)

		// Next literal run, if any, starts after the emitted match.
		inputPos = matchEnd
		literalStart = matchEnd
		if inputPos >= inputLimit {
			break
		}
	}

	return out, literalStart
}

// appendMatch encodes one back-reference using the shortest opcode class
// that can represent (matchOffset, matchLen). Long matches never use M2.
func appendMatch(out []byte, matchOffset, matchLen int) []byte {
	switch {
	case matchLen <= maxLenM2 && matchOffset <= maxOffsetM2:
		matchOffset--
		return append(out,
			opcodeByte(((matchLen-1)<<5)|((matchOffset&7)<<2)),
			opcodeByte(matchOffset>>3),
		)

	case matchOffset <= maxOffsetM3:
		matchOffset--
		out = appendLengthField(out, markerM3, matchLen-2, maxLenM3-2)

	default:
		matchOffset -= maxOffsetM3
		out = appendLengthField(out, markerM4|((matchOffset&0x4000)>>11), matchLen-2, maxLenM4-2)
	}

	return appendDistance(out, matchOffset)
}

// appendDistance appends the two-byte M3/M4 distance field.
// The low two bits of the first byte stay free for a trailing literal count.
func appendDistance(out []byte, matchOffset int) []byte {
	return append(out, opcodeByte((matchOffset&63)<<2), opcodeByte(matchOffset>>6))
}
