// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbk implements the shared GBK/gb18030 decoder (both labels use
// the same decoder algorithm, including the four-byte extension) and two
// encoder variants: GBK's, which rejects the four-byte extension and
// falls back to Unmappable, and gb18030's, which uses it.
package gbk

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/tables"
)

// Decoder is the shared GBK/gb18030 decoder state machine.
type Decoder struct {
	first        byte
	second       byte
	third        byte
	pendingASCII byte
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.first, d.second, d.third, d.pendingASCII = 0, 0, 0, 0 }

func (d *Decoder) extra(byteLength int) int {
	n := byteLength
	if d.first != 0 {
		n++
	}
	if d.second != 0 {
		n++
	}
	if d.third != 0 {
		n++
	}
	if d.pendingASCII != 0 {
		n++
	}
	return n
}

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return d.extra(byteLength) + 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	return d.extra(byteLength)*3 + 1
}

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return d.extra(byteLength)*3 + 1 }

// decodeOne advances the state machine by one input byte. wrote is true
// iff r should be written; done is true iff the caller should return
// result immediately (result is meaningless when done is false).
func (d *Decoder) decodeOne(b byte) (r rune, wrote bool, result coreresult.DecoderResult, done bool) {
	if d.third != 0 {
		first, second, third := d.first, d.second, d.third
		d.first, d.second, d.third = 0, 0, 0
		if b >= 0x30 && b <= 0x39 {
			index := (int(first)-0x81)*12600 + (int(second)-0x30)*1260 + (int(third)-0x81)*10 + (int(b) - 0x30)
			if rr, ok := tables.GB18030RangeDecode(index); ok {
				return rr, true, coreresult.DecoderResult{}, false
			}
		}
		// Reprocess: second becomes pending ASCII, third becomes the new
		// lead, and the error covers only the original first byte; b is
		// left unconsumed by the caller.
		d.pendingASCII = second
		d.first = third
		return 0, false, coreresult.Malformed(1, 2), true
	}
	if d.second != 0 {
		if b >= 0x81 && b <= 0xFE {
			d.third = b
			return 0, false, coreresult.DecoderResult{}, false
		}
		second := d.second
		d.second, d.first = 0, 0
		d.pendingASCII = second
		return 0, false, coreresult.Malformed(1, 1), true
	}
	if d.first != 0 {
		if b >= 0x30 && b <= 0x39 {
			d.second = b
			return 0, false, coreresult.DecoderResult{}, false
		}
		lead := d.first
		d.first = 0
		var offset byte = 0x41
		if b < 0x7F {
			offset = 0x40
		}
		if (b >= 0x40 && b <= 0x7E) || (b >= 0x80 && b <= 0xFE) {
			pointer := int(lead-0x81)*190 + int(b-offset)
			if rr, ok := tables.GBKDecode(pointer); ok {
				return rr, true, coreresult.DecoderResult{}, false
			}
		}
		if b <= 0x7F {
			return 0, false, coreresult.Malformed(1, 0), true
		}
		return 0, false, coreresult.Malformed(2, 0), true
	}
	// Fresh state.
	if b <= 0x7F {
		return rune(b), true, coreresult.DecoderResult{}, false
	}
	if b == 0x80 {
		return 0x20AC, true, coreresult.DecoderResult{}, false
	}
	if b >= 0x81 && b <= 0xFE {
		d.first = b
		return 0, false, coreresult.DecoderResult{}, false
	}
	return 0, false, coreresult.Malformed(1, 0), true
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	if d.pendingASCII != 0 {
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, 0, 0
		}
		dest.WriteASCII(d.pendingASCII)
		d.pendingASCII = 0
	}
	for {
		b, ok := source.Peek()
		if !ok {
			if last && (d.first != 0 || d.second != 0 || d.third != 0) {
				bad := byte(1)
				if d.third != 0 {
					bad = 3
				} else if d.second != 0 {
					bad = 2
				}
				d.first, d.second, d.third = 0, 0, 0
				return coreresult.Malformed(bad, 0), source.Consumed(), dest.Written()
			}
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceAstral() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.decodeOne(b)
		if result.Kind == coreresult.DecoderMalformed && (result.Good > 0 || b <= 0x7F) {
			// b is re-queued by the Rust original's unread_handle.unread();
			// here that simply means we do not advance past it.
		} else {
			source.Advance(1)
		}
		if done {
			return result, source.Consumed(), dest.Written()
		}
		if wrote {
			if r > 0xFFFF {
				dest.WriteAstral(r)
			} else {
				dest.WriteBMP(uint16(r))
			}
		}
	}
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	if d.pendingASCII != 0 {
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, 0, 0
		}
		dest.WriteASCII(d.pendingASCII)
		d.pendingASCII = 0
	}
	for {
		b, ok := source.Peek()
		if !ok {
			if last && (d.first != 0 || d.second != 0 || d.third != 0) {
				bad := byte(1)
				if d.third != 0 {
					bad = 3
				} else if d.second != 0 {
					bad = 2
				}
				d.first, d.second, d.third = 0, 0, 0
				return coreresult.Malformed(bad, 0), source.Consumed(), dest.Written()
			}
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceAstral() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		r, wrote, result, done := d.decodeOne(b)
		if result.Kind == coreresult.DecoderMalformed && (result.Good > 0 || b <= 0x7F) {
			// b stays unread; see DecodeToUTF16.
		} else {
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

// Encoder is the GBK/gb18030 encoder; extended selects whether the
// four-byte range extension is available (gb18030) or not (GBK, which
// reports any code point outside the two-byte plane as Unmappable).
type Encoder struct {
	extended bool
}

// NewGBKEncoder returns the GBK encoder (no four-byte extension).
func NewGBKEncoder() *Encoder { return &Encoder{extended: false} }

// NewGB18030Encoder returns the gb18030 encoder (with the four-byte
// extension).
func NewGB18030Encoder() *Encoder { return &Encoder{extended: true} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	if e.extended {
		return u16Length * 4
	}
	return u16Length * 2
}

func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int { return u16Length * 12 }

func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	if e.extended {
		return byteLength * 2
	}
	return byteLength
}

func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int { return byteLength * 12 }

func (e *Encoder) encode(r rune) ([]byte, bool) {
	if r == 0xE5E5 {
		return nil, false
	}
	if !e.extended && r == 0x20AC {
		return []byte{0x80}, true
	}
	if pointer, ok := tables.GBKEncodePointer(r); ok {
		lead := byte(pointer/190) + 0x81
		trail := pointer % 190
		var off int
		if trail < 0x3F {
			off = 0x40
		} else {
			off = 0x41
		}
		return []byte{lead, byte(trail + off)}, true
	}
	if !e.extended {
		return nil, false
	}
	index, ok := tables.GB18030RangeEncode(r)
	if !ok {
		return nil, false
	}
	first := index / (10 * 126 * 10)
	remFirst := index % (10 * 126 * 10)
	second := remFirst / (10 * 126)
	remSecond := remFirst % (10 * 126)
	third := remSecond / 10
	fourth := remSecond % 10
	return []byte{byte(first + 0x81), byte(second + 0x30), byte(third + 0x81), byte(fourth + 0x30)}, true
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
