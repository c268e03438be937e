// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eucjp implements the EUC-JP decoder and encoder: half-width
// katakana via the 0x8E prefix, the JIS X 0212 supplementary plane via the
// 0x8F prefix, and ordinary JIS X 0208 two-byte sequences otherwise.
package eucjp

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// decoderState names the lead byte(s) already consumed and awaiting a
// trail, as the Rust original's jis0212_flag + pending lead does.
type decoderState int

const (
	stateStart decoderState = iota
	stateAfterFirstByte
	stateAfterJis0212FirstByte
	stateAfterJis0212SecondByte
)

// Decoder is the EUC-JP decoder state machine.
type Decoder struct {
	state decoderState
	lead  byte // 0x8E, 0x8F or an ordinary two-byte lead
	jis1  byte // first JIS0212 trail byte, once seen
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.state = stateStart; d.lead = 0; d.jis1 = 0 }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return byteLength * 3 }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength * 3 }

// step consumes one more byte of input given the current state, returning
// a rune to write (via ok) or a result to return immediately.
func (d *Decoder) step(b byte) (r rune, ok bool, result coreresult.DecoderResult, done bool) {
	switch d.state {
	case stateStart:
		switch {
		case b < 0x80:
			d.state = stateStart
			return rune(b), true, coreresult.DecoderResult{}, false
		case b == 0x8E:
			d.lead = b
			d.state = stateAfterFirstByte
			return 0, false, coreresult.DecoderResult{}, false
		case b == 0x8F:
			d.lead = b
			d.state = stateAfterJis0212FirstByte
			return 0, false, coreresult.DecoderResult{}, false
		case b >= 0xA1 && b <= 0xFE:
			d.lead = b
			d.state = stateAfterFirstByte
			return 0, false, coreresult.DecoderResult{}, false
		default:
			return 0, false, coreresult.Malformed(1, 0), true
		}
	case stateAfterFirstByte:
		lead := d.lead
		d.lead = 0
		d.state = stateStart
		if lead == 0x8E {
			if b < 0xA1 || b > 0xDF {
				if b < 0x80 {
					return 0, false, coreresult.Malformed(1, 0), true
				}
				return 0, false, coreresult.Malformed(2, 0), true
			}
			return rune(b) + (0xFF61 - 0xA1), true, coreresult.DecoderResult{}, false
		}
		// Ordinary JIS X 0208 two-byte sequence.
		if b < 0xA1 || b > 0xFE {
			if b < 0x80 {
				return 0, false, coreresult.Malformed(1, 0), true
			}
			return 0, false, coreresult.Malformed(2, 0), true
		}
		pointer := int(lead-0xA1)*94 + int(b-0xA1)
		rr, found := tables.JIS0208Decode(pointer)
		if !found {
			return 0, false, coreresult.Malformed(2, 0), true
		}
		return rr, true, coreresult.DecoderResult{}, false
	case stateAfterJis0212FirstByte:
		if b < 0xA1 || b > 0xFE {
			d.state = stateStart
			if b < 0x80 {
				return 0, false, coreresult.Malformed(1, 0), true
			}
			return 0, false, coreresult.Malformed(2, 0), true
		}
		d.jis1 = b
		d.state = stateAfterJis0212SecondByte
		return 0, false, coreresult.DecoderResult{}, false
	case stateAfterJis0212SecondByte:
		first := d.jis1
		d.jis1 = 0
		d.state = stateStart
		if b < 0xA1 || b > 0xFE {
			if b < 0x80 {
				return 0, false, coreresult.Malformed(2, 0), true
			}
			return 0, false, coreresult.Malformed(3, 0), true
		}
		pointer := int(first-0xA1)*94 + int(b-0xA1)
		rr, found := tables.JIS0212Decode(pointer)
		if !found {
			return 0, false, coreresult.Malformed(3, 0), true
		}
		return rr, true, coreresult.DecoderResult{}, false
	}
	panic("eucjp: unreachable state")
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	for {
		if d.state == stateStart {
			if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
		}
		b, ok := source.Peek()
		if !ok {
			if d.state != stateStart && last {
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.step(b)
		if !(done && result.Kind == coreresult.DecoderMalformed && b < 0x80) {
			// An ASCII byte that ends a sequence as malformed is left unread
			// and decoded on its own next.
			source.Advance(1)
		}
		if done {
			return result, source.Consumed(), dest.Written()
		}
		if wrote {
			dest.WriteBMP(uint16(r))
		}
	}
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if d.state == stateStart {
			if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
		}
		b, ok := source.Peek()
		if !ok {
			if d.state != stateStart && last {
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.step(b)
		if !(done && result.Kind == coreresult.DecoderMalformed && b < 0x80) {
			// b stays unread; see DecodeToUTF16.
			source.Advance(1)
		}
		if done {
			return result, source.Consumed(), dest.Written()
		}
		if wrote {
			dest.WriteRune(r)
		}
	}
}

// Encoder is the EUC-JP encoder; it only ever produces ordinary two-byte
// JIS X 0208 sequences or the half-width katakana 0x8E prefix, never a
// JIS X 0212 sequence (matching the WHATWG encoder algorithm, which has
// no path into the index jis0212 table).
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length * 2 }
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int                   { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength * 2 }
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int                   { return byteLength * 12 }

func (e *Encoder) encodeRune(r rune) ([]byte, bool) {
	if r >= 0xFF61 && r <= 0xFF9F {
		return []byte{0x8E, byte(r-0xFF61) + 0xA1}, true
	}
	pointer, ok := tables.JIS0208EncodePointer(r)
	if !ok {
		return nil, false
	}
	lead := byte(pointer/94) + 0xA1
	trail := byte(pointer%94) + 0xA1
	return []byte{lead, trail}, true
}

func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	source := handle.NewUtf16Source(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if len(source.Remaining()) == 0 {
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		r, size, needMore := source.Next(last)
		if needMore {
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if r <= 0x7F {
			if dest.Written() >= len(dst) {
				return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
			}
			dest.WriteASCII(byte(r))
			source.Advance(size)
			continue
		}
		bytes, ok := e.encodeRune(r)
		if !ok {
			return coreresult.Unmappable(r), source.Consumed(), dest.Written()
		}
		if len(dst)-dest.Written() < len(bytes) {
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
		if r <= 0x7F {
			if dest.Written() >= len(dst) {
				return coreresult.EncoderOutputFullResult, consumed, dest.Written()
			}
			dest.WriteASCII(byte(r))
			consumed += size
			continue
		}
		bytes, ok := e.encodeRune(r)
		if !ok {
			return coreresult.Unmappable(r), consumed, dest.Written()
		}
		if len(dst)-dest.Written() < len(bytes) {
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		for _, bb := range bytes {
			dest.WriteASCII(bb)
		}
		consumed += size
	}
	return coreresult.EncoderInputEmptyResult, consumed, dest.Written()
}
