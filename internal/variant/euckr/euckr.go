// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package euckr implements the EUC-KR decoder and encoder: lead
// 0x81..=0xFE, trail 0x41..=0xFE, pointer = (lead-0x81)*190+(trail-0x41).
//
// This is the WHATWG EUC-KR formula, not the CP949/UHC extended-trail
// arithmetic golang.org/x/text/encoding/korean.EUCKR implements (x/text's
// EUC-KR is deliberately the Microsoft superset); the two disagree on
// which trail bytes are valid, so the pointer arithmetic here is ported
// from the WHATWG Encoding Standard's decoder algorithm directly rather
// than adapted from x/text.
package euckr

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// Decoder is the EUC-KR decoder state machine; it holds at most one
// pending lead byte between calls.
type Decoder struct {
	lead byte
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.lead = 0 }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return byteLength * 3 }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength * 3 }

func pointerFor(lead, trail byte) (int, bool) {
	if trail < 0x41 || trail > 0xFE {
		return 0, false
	}
	return int(lead-0x81)*190 + int(trail-0x41), true
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
		rr, found := tables.EUCKRDecode(pointer)
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
	if b < 0x81 || b == 0xFF {
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
	rr, found := tables.EUCKRDecode(pointer)
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

// Encoder is the EUC-KR encoder; it carries no state between calls.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length * 2 }
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int                   { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength * 2 }
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int                   { return byteLength * 12 }

func (e *Encoder) encodeRune(r rune) (lead, trail byte, ok bool) {
	pointer, ok := tables.EUCKREncodePointer(r)
	if !ok {
		return 0, 0, false
	}
	return byte(pointer/190) + 0x81, byte(pointer%190) + 0x41, true
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
