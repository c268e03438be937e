// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso2022jp implements the ISO-2022-JP decoder and encoder: a
// shift-state machine switching between ASCII, JIS X 0201 Roman, JIS X
// 0201 katakana and JIS X 0208 via three-byte escape sequences.
package iso2022jp

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// shiftState names the character set currently selected.
type shiftState int

const (
	stateAscii shiftState = iota
	stateRoman
	stateKatakana
	stateLeadByte
	stateTrailByte
	stateEscapeStart
	stateEscape
)

// Decoder is the ISO-2022-JP decoder state machine.
type Decoder struct {
	state shiftState
	// outputState is the shift state to fall back to when an escape
	// sequence turns out invalid: the last state a completed escape (or
	// the initial Ascii state) put the decoder in.
	outputState shiftState
	lead        byte // two-byte JIS lead, or the byte right after ESC while in stateEscape
	// prepended holds a byte that was already consumed from a previous
	// call's input but, because the escape sequence it belonged to
	// turned out invalid, must be replayed as ordinary content (under
	// outputState) before any new input is read.
	prepended          byte
	havePrepended      bool
	sawContentSinceEsc bool
}

func NewDecoder() *Decoder { return &Decoder{sawContentSinceEsc: true} }

func (d *Decoder) Reset() {
	*d = Decoder{sawContentSinceEsc: true}
}

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength + 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	return byteLength*3 + 1
}

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength*3 + 1 }

// decodeOne advances the state machine by one byte. unconsumed reports
// that b was not actually consumed and must be the first byte reprocessed
// by the caller -- used when an escape sequence turns out invalid and b
// belongs to whatever comes after it, not to the failed sequence.
func (d *Decoder) decodeOne(b byte) (r rune, wrote bool, result coreresult.DecoderResult, done bool, unconsumed bool) {
	switch d.state {
	case stateAscii:
		if b == 0x1B {
			d.state = stateEscapeStart
			return 0, false, coreresult.DecoderResult{}, false, false
		}
		if b >= 0x80 {
			d.sawContentSinceEsc = true
			return 0, false, coreresult.Malformed(1, 0), true, false
		}
		d.sawContentSinceEsc = true
		return rune(b), true, coreresult.DecoderResult{}, false, false
	case stateRoman:
		if b == 0x1B {
			d.state = stateEscapeStart
			return 0, false, coreresult.DecoderResult{}, false, false
		}
		d.sawContentSinceEsc = true
		switch b {
		case 0x5C:
			return 0x00A5, true, coreresult.DecoderResult{}, false, false
		case 0x7E:
			return 0x203E, true, coreresult.DecoderResult{}, false, false
		}
		if b >= 0x80 {
			return 0, false, coreresult.Malformed(1, 0), true, false
		}
		return rune(b), true, coreresult.DecoderResult{}, false, false
	case stateKatakana:
		if b == 0x1B {
			d.state = stateEscapeStart
			return 0, false, coreresult.DecoderResult{}, false, false
		}
		if b >= 0x21 && b <= 0x5F {
			d.sawContentSinceEsc = true
			return rune(b) + (0xFF61 - 0x21), true, coreresult.DecoderResult{}, false, false
		}
		d.sawContentSinceEsc = true
		return 0, false, coreresult.Malformed(1, 0), true, false
	case stateLeadByte:
		if b == 0x1B {
			d.state = stateEscapeStart
			return 0, false, coreresult.DecoderResult{}, false, false
		}
		if b < 0x21 || b > 0x7E {
			d.sawContentSinceEsc = true
			return 0, false, coreresult.Malformed(1, 0), true, false
		}
		d.lead = b
		d.state = stateTrailByte
		return 0, false, coreresult.DecoderResult{}, false, false
	case stateTrailByte:
		lead := d.lead
		d.lead = 0
		d.state = stateLeadByte
		if b < 0x21 || b > 0x7E {
			return 0, false, coreresult.Malformed(1, 0), true, false
		}
		pointer := int(lead-0x21)*94 + int(b-0x21)
		rr, ok := tables.JIS0208Decode(pointer)
		if !ok {
			return 0, false, coreresult.Malformed(2, 0), true, false
		}
		d.sawContentSinceEsc = true
		return rr, true, coreresult.DecoderResult{}, false, false
	case stateEscapeStart:
		if b == '$' || b == '(' {
			d.lead = b
			d.state = stateEscape
			return 0, false, coreresult.DecoderResult{}, false, false
		}
		// b does not continue an escape sequence at all: only the lone
		// ESC was bad. b itself was never consumed, so it gets
		// reprocessed fresh once decoder_state reverts to outputState.
		d.sawContentSinceEsc = true
		d.state = d.outputState
		return 0, false, coreresult.Malformed(1, 0), true, true
	case stateEscape:
		first := d.lead
		var next shiftState
		var ok bool
		switch {
		case first == '(' && b == 'B':
			next, ok = stateAscii, true
		case first == '(' && b == 'J':
			next, ok = stateRoman, true
		case first == '(' && b == 'I':
			next, ok = stateKatakana, true
		case first == '$' && (b == '@' || b == 'B'):
			next, ok = stateLeadByte, true
		}
		if !ok {
			// The byte in error is the lone ESC two bytes back; first
			// (already consumed) is good and gets replayed as content
			// under outputState, while b itself is unread and retried.
			d.prepended = first
			d.havePrepended = true
			d.sawContentSinceEsc = true
			d.state = d.outputState
			return 0, false, coreresult.Malformed(1, 1), true, true
		}
		if !d.sawContentSinceEsc {
			// Two escape sequences back to back with nothing decoded
			// between them: report the first as malformed, having already
			// consumed the second (whose effect -- next -- still applies).
			d.state = next
			d.outputState = next
			d.sawContentSinceEsc = false
			return 0, false, coreresult.Malformed(3, 3), true, false
		}
		d.state = next
		d.outputState = next
		d.sawContentSinceEsc = false
		return 0, false, coreresult.DecoderResult{}, false, false
	}
	panic("iso2022jp: unreachable state")
}

func (d *Decoder) decodeLoop(src []byte, last bool, hasSpace func() bool, write func(rune)) (coreresult.DecoderResult, int, int) {
	if d.havePrepended {
		if !hasSpace() {
			return coreresult.DecoderOutputFullResult, 0, 0
		}
		d.havePrepended = false
		r, wrote, result, done, _ := d.decodeOne(d.prepended)
		if wrote {
			write(r)
		}
		if done {
			return result, 0, 0
		}
	}
	source := handle.NewByteSource(src)
	for {
		b, ok := source.Peek()
		if !ok {
			if last {
				switch d.state {
				case stateEscapeStart, stateTrailByte:
					d.state = d.outputState
					return coreresult.Malformed(1, 0), source.Consumed(), 0
				case stateEscape:
					d.prepended = d.lead
					d.havePrepended = true
					d.state = d.outputState
					return coreresult.Malformed(1, 1), source.Consumed(), 0
				}
			}
			return coreresult.DecoderInputEmptyResult, source.Consumed(), 0
		}
		if !hasSpace() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), 0
		}
		r, wrote, result, done, unconsumed := d.decodeOne(b)
		if !unconsumed {
			source.Advance(1)
		}
		if done {
			return result, source.Consumed(), 0
		}
		if wrote {
			write(r)
		}
	}
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	dest := handle.NewUtf16Destination(dst)
	result, consumed, _ := d.decodeLoop(src, last, dest.SpaceBMP, func(r rune) { dest.WriteBMP(uint16(r)) })
	return result, consumed, dest.Written()
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	result, consumed, _ := d.decodeLoop(src, last, dest.SpaceBMP, func(r rune) { dest.WriteRune(r) })
	return result, consumed, dest.Written()
}

// Encoder is the ISO-2022-JP encoder. Unlike the rest of this module's
// encoders it carries state: the currently selected shift state, so it
// knows when an escape sequence is needed before the next character.
//
// encoding_rs's own encoder methods for this variant are stubs that
// return a zero-length result without consuming input -- the reference
// implementation never finished this path. This module implements it for
// real: ASCII bytes use the Ascii state, U+00A5 and U+203E use Roman, and
// everything else goes through the shared jis0208 pointer table via the
// LeadByte/TrailByte two-byte form, each preceded by the matching escape
// sequence when the shift state needs to change.
type Encoder struct {
	state shiftState
}

func NewEncoder() *Encoder { return &Encoder{state: stateAscii} }

func (e *Encoder) Reset() { e.state = stateAscii }

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return u16Length*4 + 3
}
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return byteLength*4 + 3
}
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int { return byteLength * 12 }

// escapeFor returns the three-byte escape sequence needed to switch into
// target from the encoder's current state, and updates the state.
func (e *Encoder) escapeFor(target shiftState) []byte {
	if e.state == target {
		return nil
	}
	e.state = target
	switch target {
	case stateAscii:
		return []byte{0x1B, '(', 'B'}
	case stateRoman:
		return []byte{0x1B, '(', 'J'}
	case stateLeadByte:
		return []byte{0x1B, '$', 'B'}
	}
	panic("iso2022jp: unreachable target")
}

func (e *Encoder) encode(r rune) ([]byte, bool) {
	if r == 0x000A || r == 0x000D {
		out := e.escapeFor(stateAscii)
		return append(out, byte(r)), true
	}
	if r <= 0x7F {
		out := e.escapeFor(stateAscii)
		return append(out, byte(r)), true
	}
	if r == 0x00A5 {
		out := e.escapeFor(stateRoman)
		return append(out, 0x5C), true
	}
	if r == 0x203E {
		out := e.escapeFor(stateRoman)
		return append(out, 0x7E), true
	}
	pointer, ok := tables.JIS0208EncodePointer(r)
	if !ok {
		return nil, false
	}
	out := e.escapeFor(stateLeadByte)
	lead := byte(pointer/94) + 0x21
	trail := byte(pointer%94) + 0x21
	return append(out, lead, trail), true
}

func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	source := handle.NewUtf16Source(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if len(source.Remaining()) == 0 {
			if last && e.state != stateAscii {
				if len(dst)-dest.Written() < 3 {
					return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
				}
				for _, bb := range e.escapeFor(stateAscii) {
					dest.WriteASCII(bb)
				}
			}
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		r, size, needMore := source.Next(last)
		if needMore {
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		savedState := e.state
		bytes, ok := e.encode(r)
		if !ok {
			e.state = savedState
			return coreresult.Unmappable(r), source.Consumed(), dest.Written()
		}
		if len(dst)-dest.Written() < len(bytes) {
			e.state = savedState
			return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
		}
		for _, bb := range bytes {
			dest.WriteASCII(bb)
		}
		source.Advance(size)
	}
}

func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	consumed := 0
	for _, r := range src {
		size := len(string(r))
		savedState := e.state
		bytes, ok := e.encode(r)
		if !ok {
			e.state = savedState
			return coreresult.Unmappable(r), consumed, dest.Written()
		}
		if len(dst)-dest.Written() < len(bytes) {
			e.state = savedState
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		for _, bb := range bytes {
			dest.WriteASCII(bb)
		}
		consumed += size
	}
	if last && e.state != stateAscii {
		if len(dst)-dest.Written() < 3 {
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		for _, bb := range e.escapeFor(stateAscii) {
			dest.WriteASCII(bb)
		}
	}
	return coreresult.EncoderInputEmptyResult, consumed, dest.Written()
}
