// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package big5 implements the Big5 (Code Page 950) decoder and encoder,
// including the WHATWG four-pointer combining-character special case.
package big5

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// combining holds the two-rune decompositions for the four pointers the
// WHATWG encoding standard singles out: LATIN CAPITAL/SMALL LETTER E WITH
// CIRCUMFLEX AND MACRON/CARON, none of which has a precomposed code point.
var combining = map[int]string{
	1133: "Ê̄",
	1135: "Ê̌",
	1164: "ê̄",
	1166: "ê̌",
}

// Decoder is the Big5 decoder state machine; it holds at most one pending
// lead byte between calls.
type Decoder struct {
	lead byte
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.lead = 0 }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	// Worst case is a combining decomposition: one trail byte -> two runes,
	// each up to 2 UTF-8 bytes (both members are in the Latin Extended-A/
	// combining-diacritics range).
	return byteLength * 2
}

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength*2 + 3 }

func pointerFor(lead, trail byte) (pointer int, trailOK bool) {
	var offset byte
	switch {
	case trail >= 0x40 && trail < 0x7F:
		offset = 0x40
	case trail >= 0xA1 && trail <= 0xFE:
		offset = 0x62
	default:
		return 0, false
	}
	return int(lead-0x81)*157 + int(trail-offset), true
}

// DecodeToUTF16 decodes src into dst.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	if d.lead != 0 {
		r, comb, hasComb, n, result, ok := d.resumeLead(source, dest.SpaceBMP())
		if !ok {
			return result, n, dest.Written()
		}
		if hasComb {
			for _, ru := range comb {
				dest.WriteBMP(uint16(ru))
			}
		} else {
			dest.WriteBMP(uint16(r))
		}
	}
	for {
		if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		b, ok := source.Peek()
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if b < 0x80 {
			if !dest.SpaceBMP() {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
			dest.WriteASCII(b)
			source.Advance(1)
			continue
		}
		if b < 0x81 || b == 0xFF {
			source.Advance(1)
			return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
		}
		trail, hasTrail := source.PeekAt(1)
		if !hasTrail {
			if last {
				source.Advance(1)
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			d.lead = b
			source.Advance(1)
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		pointer, trailOK := pointerFor(b, trail)
		if !trailOK {
			if trail < 0x80 {
				source.Advance(1)
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			source.Advance(2)
			return coreresult.Malformed(2, 0), source.Consumed(), dest.Written()
		}
		if s, isCombining := combining[pointer]; isCombining {
			if !dest.SpaceAstral() {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
			for _, ru := range s {
				dest.WriteBMP(uint16(ru))
			}
			source.Advance(2)
			continue
		}
		r, ok := tables.Big5Decode(pointer)
		if !ok {
			source.Advance(2)
			return coreresult.Malformed(2, 0), source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteBMP(uint16(r))
		source.Advance(2)
	}
}

// resumeLead handles the first byte of a call that starts with a pending
// lead from the previous call. It returns the decoded payload (a rune or,
// for the combining special case, a string of two runes), the number of
// input bytes consumed this call, the result if the call should return
// immediately, and whether a payload was produced at all.
func (d *Decoder) resumeLead(source *handle.ByteSource, hasSpace bool) (r rune, comb string, hasComb bool, n int, result coreresult.DecoderResult, ok bool) {
	lead := d.lead
	d.lead = 0
	b, peeked := source.Peek()
	if !peeked {
		return 0, "", false, source.Consumed(), coreresult.DecoderInputEmptyResult, false
	}
	pointer, trailOK := pointerFor(lead, b)
	if !trailOK {
		if b < 0x80 {
			return 0, "", false, source.Consumed(), coreresult.Malformed(1, 0), false
		}
		source.Advance(1)
		return 0, "", false, source.Consumed(), coreresult.Malformed(1, 0), false
	}
	if !hasSpace {
		d.lead = lead
		return 0, "", false, source.Consumed(), coreresult.DecoderOutputFullResult, false
	}
	if s, isCombining := combining[pointer]; isCombining {
		source.Advance(1)
		return 0, s, true, source.Consumed(), coreresult.DecoderInputEmptyResult, true
	}
	decoded, found := tables.Big5Decode(pointer)
	if !found {
		source.Advance(1)
		return 0, "", false, source.Consumed(), coreresult.Malformed(2, 0), false
	}
	source.Advance(1)
	return decoded, "", false, source.Consumed(), coreresult.DecoderInputEmptyResult, true
}

// DecodeToUTF8 is DecodeToUTF16's UTF-8 destination counterpart.
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	if d.lead != 0 {
		r, comb, hasComb, n, result, ok := d.resumeLead(source, dest.SpaceBMP())
		if !ok {
			return result, n, dest.Written()
		}
		if hasComb {
			dest.WriteString(comb)
		} else {
			dest.WriteRune(r)
		}
	}
	for {
		if _, found := dest.CopyASCII(source); !found && len(source.Remaining()) == 0 {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		b, ok := source.Peek()
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if b < 0x80 {
			if !dest.SpaceBMP() {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
			dest.WriteASCII(b)
			source.Advance(1)
			continue
		}
		if b < 0x81 || b == 0xFF {
			source.Advance(1)
			return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
		}
		trail, hasTrail := source.PeekAt(1)
		if !hasTrail {
			if last {
				source.Advance(1)
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			d.lead = b
			source.Advance(1)
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		pointer, trailOK := pointerFor(b, trail)
		if !trailOK {
			if trail < 0x80 {
				source.Advance(1)
				return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
			}
			source.Advance(2)
			return coreresult.Malformed(2, 0), source.Consumed(), dest.Written()
		}
		if s, isCombining := combining[pointer]; isCombining {
			if len(dst)-dest.Written() < len(s) {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
			dest.WriteString(s)
			source.Advance(2)
			continue
		}
		r, ok := tables.Big5Decode(pointer)
		if !ok {
			source.Advance(2)
			return coreresult.Malformed(2, 0), source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteRune(r)
		source.Advance(2)
	}
}

// Encoder is the Big5 encoder. It carries no state between calls.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length * 2 }
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int                   { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength * 2 }
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int                   { return byteLength * 12 }

func (e *Encoder) encodeRune(r rune) (lead, trail byte, ok bool) {
	pointer, ok := tables.Big5EncodePointer(r)
	if !ok {
		return 0, 0, false
	}
	lead = byte(pointer/157) + 0x81
	t := pointer % 157
	if t < 0x3F {
		trail = byte(t) + 0x40
	} else {
		trail = byte(t) + 0x62
	}
	return lead, trail, true
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
		lead, trail, ok := e.encodeRune(r)
		if !ok {
			return coreresult.Unmappable(r), source.Consumed(), dest.Written()
		}
		if len(dst)-dest.Written() < 2 {
			return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteASCII(lead)
		dest.WriteASCII(trail)
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
		lead, trail, ok := e.encodeRune(r)
		if !ok {
			return coreresult.Unmappable(r), consumed, dest.Written()
		}
		if len(dst)-dest.Written() < 2 {
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		dest.WriteASCII(lead)
		dest.WriteASCII(trail)
		consumed += size
	}
	return coreresult.EncoderInputEmptyResult, consumed, dest.Written()
}
