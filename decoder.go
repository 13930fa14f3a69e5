// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import "github.com/pkg/errors"

const (
	// afterLiteralBaseOffset is the base distance of the 3-byte short match
	// that may directly follow a literal run of four bytes or more.
	afterLiteralBaseOffset = maxOffsetM2 + 1

	// maxZeroExtendedChunks limits zero-extension runs so malformed inputs cannot
	// overflow run-length reconstruction math.
	maxZeroExtendedChunks = int(^uint(0)/255) - 2
)

// decodeState names what the decoder expects next in the instruction stream.
type decodeState uint8

const (
	// stateStart inspects the first byte, which may carry an initial literal run.
	stateStart decodeState = iota
	// stateLiteralOrMatch expects a literal-run opcode or a match opcode.
	stateLiteralOrMatch
	// stateMatchAfterLiteral expects a match; a low opcode is the 3-byte far short match.
	stateMatchAfterLiteral
	// stateMatchAfterTrailing expects a match; a low opcode is the 2-byte near short match.
	stateMatchAfterTrailing
	// stateCopyMatch replays the pending back-reference and its trailing literals.
	stateCopyMatch
	// stateEnd is reached once the end-of-stream marker has been read.
	stateEnd
)

// String returns the state name used in error messages.
func (s decodeState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateLiteralOrMatch:
		return "literal-or-match"
	case stateMatchAfterLiteral:
		return "match-after-literal"
	case stateMatchAfterTrailing:
		return "match-after-trailing"
	case stateCopyMatch:
		return "copy-match"
	case stateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// decoder holds the cursors of one decompression call.
type decoder struct {
	src []byte
	dst []byte

	inPos  int
	outPos int
	state  decodeState

	// pending back-reference, valid in stateCopyMatch
	matchDist int
	matchLen  int
}

// newDecoder returns a decoder positioned at the start of src and dst.
func newDecoder(src, dst []byte) *decoder {
	return &decoder{src: src, dst: dst}
}

// run advances the state machine until the end-of-stream marker or the first error.
func (d *decoder) run() error {
	for d.state != stateEnd {
		var err error

		switch d.state {
		case stateStart:
			err = d.start()
		case stateLiteralOrMatch:
			err = d.literalOrMatch()
		case stateMatchAfterLiteral:
			err = d.matchAfterLiteral()
		case stateMatchAfterTrailing:
			err = d.matchAfterTrailing()
		case stateCopyMatch:
			err = d.copyMatch()
		default:
			err = errors.Errorf("invalid decoder state %d", d.state)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// start handles the optional initial literal run encoded as 17+n.
func (d *decoder) start() error {
	if len(d.src) == 0 {
		return d.fail(ErrEOFMarkerNotFound)
	}

	inst := d.src[0]
	if inst <= firstLiteralBias {
		// Not a literal header; the byte is dispatched as an ordinary opcode.
		d.state = stateLiteralOrMatch
		return nil
	}

	d.inPos++
	runLen := int(inst) - firstLiteralBias
	if err := d.copyLiterals(runLen); err != nil {
		return err
	}

	if runLen <= maxTrailingLiteral {
		d.state = stateMatchAfterTrailing
	} else {
		d.state = stateMatchAfterLiteral
	}

	return nil
}

// literalOrMatch decodes a literal run (opcode < 16) or hands off to a match.
func (d *decoder) literalOrMatch() error {
	inst, err := d.readOpcode()
	if err != nil {
		return err
	}

	if inst >= markerM4 {
		return d.decodeMatch(inst)
	}

	runLen := int(inst) + 3
	if inst == 0 {
		runLen, err = d.readLength(3, maxShortLiteralLen-3)
		if err != nil {
			return err
		}
	}

	if err := d.copyLiterals(runLen); err != nil {
		return err
	}

	d.state = stateMatchAfterLiteral
	return nil
}

// matchAfterLiteral decodes the opcode that follows a literal run of 4+ bytes.
func (d *decoder) matchAfterLiteral() error {
	inst, err := d.readOpcode()
	if err != nil {
		return err
	}

	if inst >= markerM4 {
		return d.decodeMatch(inst)
	}

	tail, err := d.readByte()
	if err != nil {
		return err
	}

	d.setMatch(afterLiteralBaseOffset+(int(inst)>>2)+(int(tail)<<2), 3)
	return nil
}

// matchAfterTrailing decodes the opcode that follows 1..3 trailing literals.
func (d *decoder) matchAfterTrailing() error {
	inst, err := d.readOpcode()
	if err != nil {
		return err
	}

	if inst >= markerM4 {
		return d.decodeMatch(inst)
	}

	tail, err := d.readByte()
	if err != nil {
		return err
	}

	d.setMatch(1+(int(inst)>>2)+(int(tail)<<2), 2)
	return nil
}

// decodeMatch decodes an M2, M3 or M4 instruction whose opcode is inst.
// An M4 with zero distance is the end-of-stream marker.
func (d *decoder) decodeMatch(inst byte) error {
	switch {
	case inst >= markerM2:
		b, err := d.readByte()
		if err != nil {
			return err
		}

		d.setMatch((int(b)<<3)+((int(inst)>>2)&0x7)+1, (int(inst)>>5)+1)
		return nil

	case inst >= markerM3:
		matchLen := int(inst&0x1f) + 2
		if matchLen == 2 {
			var err error
			if matchLen, err = d.readLength(2, maxLenM3-2); err != nil {
				return err
			}
		}

		v16, err := d.readLE16()
		if err != nil {
			return err
		}

		d.setMatch((int(v16)>>2)+1, matchLen)
		return nil

	default:
		matchLen := int(inst&0x7) + 2
		if matchLen == 2 {
			var err error
			if matchLen, err = d.readLength(2, maxLenM4-2); err != nil {
				return err
			}
		}

		v16, err := d.readLE16()
		if err != nil {
			return err
		}

		baseDist := ((int(inst) & 0x8) << 11) + (int(v16) >> 2)
		if baseDist == 0 {
			d.state = stateEnd
			return nil
		}

		d.setMatch(baseDist+maxOffsetM3, matchLen)
		return nil
	}
}

// setMatch records a pending back-reference and moves to stateCopyMatch.
func (d *decoder) setMatch(dist, length int) {
	d.matchDist = dist
	d.matchLen = length
	d.state = stateCopyMatch
}

// copyMatch replays the pending back-reference, then copies the trailing
// literals counted in the low two bits of the byte two positions back.
func (d *decoder) copyMatch() error {
	outPos, err := copyBackRef(d.dst, d.outPos, d.matchDist, d.matchLen)
	if err != nil {
		return d.fail(err)
	}
	d.outPos = outPos

	trailing := int(d.src[d.inPos-2] & 0x3)
	if trailing == 0 {
		d.state = stateLiteralOrMatch
		return nil
	}

	if err := d.copyLiterals(trailing); err != nil {
		return err
	}

	d.state = stateMatchAfterTrailing
	return nil
}

// readOpcode reads the next instruction byte; running out here means the
// stream has no end-of-stream marker.
func (d *decoder) readOpcode() (byte, error) {
	if d.inPos >= len(d.src) {
		return 0, d.fail(ErrEOFMarkerNotFound)
	}

	b := d.src[d.inPos]
	d.inPos++

	return b, nil
}

// readByte reads one operand byte.
func (d *decoder) readByte() (byte, error) {
	if d.inPos >= len(d.src) {
		return 0, d.fail(ErrInputOverrun)
	}

	b := d.src[d.inPos]
	d.inPos++

	return b, nil
}

// readLE16 reads one little-endian uint16 distance field.
func (d *decoder) readLE16() (uint16, error) {
	if len(d.src)-d.inPos < 2 {
		return 0, d.fail(ErrInputOverrun)
	}

	lo := uint16(d.src[d.inPos])
	hi := uint16(d.src[d.inPos+1])
	d.inPos += 2

	return lo | hi<<8, nil
}

// readLength reads a zero-extended length: each zero byte adds 255, the first
// non-zero byte ends the run. The result is base + fieldMax + extension.
func (d *decoder) readLength(base, fieldMax int) (int, error) {
	start := d.inPos
	for d.inPos < len(d.src) && d.src[d.inPos] == 0 {
		d.inPos++
	}

	count := d.inPos - start
	if count > maxZeroExtendedChunks {
		return 0, d.fail(ErrInputOverrun)
	}

	tail, err := d.readByte()
	if err != nil {
		return 0, err
	}

	return base + fieldMax + count*255 + int(tail), nil
}

// copyLiterals copies n literal bytes from input to output. The input must
// also hold the opcode that follows the run.
func (d *decoder) copyLiterals(n int) error {
	if n > len(d.dst)-d.outPos {
		return d.fail(ErrOutputOverrun)
	}

	if n+1 > len(d.src)-d.inPos {
		return d.fail(ErrInputOverrun)
	}

	copy(d.dst[d.outPos:d.outPos+n], d.src[d.inPos:d.inPos+n])
	d.inPos += n
	d.outPos += n

	return nil
}

// fail annotates err with the decoder position.
func (d *decoder) fail(err error) error {
	return errors.Wrapf(err, "%s at input offset %d, output offset %d", d.state, d.inPos, d.outPos)
}
