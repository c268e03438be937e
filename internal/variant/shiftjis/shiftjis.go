// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shiftjis implements the Shift_JIS decoder and encoder.
package shiftjis

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// Decoder is the Shift_JIS decoder state machine; it holds at most one
// pending lead byte between calls.
type Decoder struct {
	lead byte
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.lead = 0 }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return byteLength * 3 }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength * 3 }

func leadOffset(lead byte) (byte, bool) {
	switch {
	case lead >= 0x81 && lead <= 0x9F:
		return 0x81, true
	case lead >= 0xE0 && lead <= 0xFC:
		return 0xC1, true
	default:
		return 0, false
	}
}

func pointerFor(lead, trail byte) (int, bool) {
	offLead, ok := leadOffset(lead)
	if !ok {
		return 0, false
	}
	var offTrail byte
	switch {
	case trail >= 0x40 && trail <= 0x7E:
		offTrail = 0x40
	case trail >= 0x80 && trail <= 0xFC:
		offTrail = 0x41
	default:
		return 0, false
	}
	return int(lead-offLead)*188 + int(trail-offTrail), true
}

func runeForPointer(pointer int) (rune, bool) {
	if pointer >= 8836 && pointer <= 10715 {
		return 0xE000 + rune(pointer-8836), true
	}
	return tables.JIS0208Decode(pointer)
}

func (d *Decoder) decodeOne(source *handle.ByteSource, last bool) (r rune, wrote bool, result coreresult.DecoderResult, done bool) {
	if d.lead != 0 {
		lead := d.lead
		d.lead = 0
		b, ok := source.Peek()
		if !ok {
			return 0, false, coreresult.DecoderInputEmptyResult, true
		}
		pointer, trailOK := pointerFor(lead, b)
		if !trailOK {
			if b < 0x80 {
				return 0, false, coreresult.Malformed(1, 0), true
			}
			source.Advance(1)
			return 0, false, coreresult.Malformed(1, 0), true
		}
		rr, found := runeForPointer(pointer)
		if !found {
			source.Advance(1)
			return 0, false, coreresult.Malformed(2, 0), true
		}
		source.Advance(1)
		return rr, true, coreresult.DecoderResult{}, false
	}
	b, ok := source.Peek()
	if !ok {
		return 0, false, coreresult.DecoderInputEmptyResult, true
	}
	if b < 0x80 {
		source.Advance(1)
		return rune(b), true, coreresult.DecoderResult{}, false
	}
	if b == 0x80 {
		source.Advance(1)
		return 0x0080, true, coreresult.DecoderResult{}, false
	}
	if b >= 0xA1 && b <= 0xDF {
		source.Advance(1)
		return rune(b) + (0xFF61 - 0xA1), true, coreresult.DecoderResult{}, false
	}
	if _, ok := leadOffset(b); !ok {
		source.Advance(1)
		return 0, false, coreresult.Malformed(1, 0), true
	}
	if len(source.Remaining()) < 2 {
		source.Advance(1)
		if last {
			return 0, false, coreresult.Malformed(1, 0), true
		}
		d.lead = b
		return 0, false, coreresult.DecoderInputEmptyResult, true
	}
	trail, _ := source.PeekAt(1)
	pointer, trailOK := pointerFor(b, trail)
	if !trailOK {
		source.Advance(1)
		if trail < 0x80 {
			return 0, false, coreresult.Malformed(1, 0), true
		}
		source.Advance(1)
		return 0, false, coreresult.Malformed(2, 0), true
	}
	rr, found := runeForPointer(pointer)
	if !found {
		source.Advance(2)
		return 0, false, coreresult.Malformed(2, 0), true
	}
	source.Advance(2)
	return rr, true, coreresult.DecoderResult{}, false
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	for {
		if d.lead == 0 {
			if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.decodeOne(source, last)
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
		if d.lead == 0 {
			if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.decodeOne(source, last)
		if done {
			return result, source.Consumed(), dest.Written()
		}
		if wrote {
			dest.WriteRune(r)
		}
	}
}

// Encoder is the Shift_JIS encoder; it carries no state between calls.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length * 2 }
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int                   { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength * 2 }
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int                   { return byteLength * 12 }

func (e *Encoder) encodeRune(r rune) (lead, trail byte, ok bool) {
	if r >= 0xFF61 && r <= 0xFF9F {
		return 0, 0, false // handled by caller as a one-byte form
	}
	pointer, ok := tables.JIS0208EncodePointer(r)
	if !ok {
		return 0, 0, false
	}
	leadOff := byte(0x81)
	if pointer >= 188*31 {
		leadOff = 0xC1
	}
	lead = byte(pointer/188) + leadOff
	trailIdx := pointer % 188
	if trailIdx < 0x3F {
		trail = byte(trailIdx) + 0x40
	} else {
		trail = byte(trailIdx) + 0x41
	}
	return lead, trail, true
}

func (e *Encoder) encode(r rune) ([]byte, bool) {
	if r >= 0xFF61 && r <= 0xFF9F {
		return []byte{byte(r-0xFF61) + 0xA1}, true
	}
	lead, trail, ok := e.encodeRune(r)
	if !ok {
		return nil, false
	}
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
		bytes, ok := e.encode(r)
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
		bytes, ok := e.encode(r)
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
