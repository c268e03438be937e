// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf16 implements the UTF-16LE and UTF-16BE variant codecs: a
// decoder that reassembles little- or big-endian byte pairs into code
// units (carrying at most one pending byte across calls for an odd-length
// chunk) and an encoder that narrows code units back into the same byte
// order.
package utf16

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
)

// Decoder is the shared UTF-16LE/UTF-16BE decoder; bigEndian selects the
// byte order.
type Decoder struct {
	bigEndian     bool
	pendingLow    byte
	havePending   bool
	highSurrogate uint16
	haveHigh      bool
}

func NewLEDecoder() *Decoder { return &Decoder{bigEndian: false} }
func NewBEDecoder() *Decoder { return &Decoder{bigEndian: true} }

func (d *Decoder) Reset() {
	bigEndian := d.bigEndian
	*d = Decoder{bigEndian: bigEndian}
}

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength/2 + 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	return (byteLength/2 + 1) * 3
}

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return (byteLength/2 + 1) * 3 }

func (d *Decoder) unit(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// nextUnit reassembles the next 16-bit code unit from src, consuming one
// or two bytes. ok is false if src is exhausted before a full unit could
// be formed (the odd trailing byte, if any, is buffered in d.pendingLow
// for the next call).
func (d *Decoder) nextUnit(source *handle.ByteSource) (u uint16, ok bool) {
	var first byte
	if d.havePending {
		first = d.pendingLow
		d.havePending = false
	} else {
		b, has := source.Peek()
		if !has {
			return 0, false
		}
		source.Advance(1)
		first = b
	}
	b, has := source.Peek()
	if !has {
		d.pendingLow = first
		d.havePending = true
		return 0, false
	}
	source.Advance(1)
	if d.bigEndian {
		return d.unit(first, b), true
	}
	return d.unit(b, first), true
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	for {
		if d.haveHigh {
			if !dest.SpaceAstral() {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
		} else if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		u, ok := d.nextUnit(source)
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if d.haveHigh {
			high := d.highSurrogate
			d.haveHigh = false
			if u >= 0xDC00 && u <= 0xDFFF {
				dest.WriteSurrogatePair(high, u)
				continue
			}
			dest.WriteBMP(0xFFFD)
			if u >= 0xD800 && u <= 0xDBFF {
				d.highSurrogate = u
				d.haveHigh = true
				continue
			}
			dest.WriteBMP(u)
			continue
		}
		if u >= 0xD800 && u <= 0xDBFF {
			d.highSurrogate = u
			d.haveHigh = true
			continue
		}
		if u >= 0xDC00 && u <= 0xDFFF {
			dest.WriteBMP(0xFFFD)
			continue
		}
		dest.WriteBMP(u)
	}
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if d.haveHigh {
			if !dest.SpaceAstral() {
				return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
			}
		} else if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		u, ok := d.nextUnit(source)
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if d.haveHigh {
			high := d.highSurrogate
			d.haveHigh = false
			if u >= 0xDC00 && u <= 0xDFFF {
				r := (rune(high)-0xD800)<<10 + (rune(u) - 0xDC00) + 0x10000
				dest.WriteRune(r)
				continue
			}
			dest.WriteRune(0xFFFD)
			if u >= 0xD800 && u <= 0xDBFF {
				d.highSurrogate = u
				d.haveHigh = true
				continue
			}
			dest.WriteRune(rune(u))
			continue
		}
		if u >= 0xD800 && u <= 0xDBFF {
			d.highSurrogate = u
			d.haveHigh = true
			continue
		}
		if u >= 0xDC00 && u <= 0xDFFF {
			dest.WriteRune(0xFFFD)
			continue
		}
		dest.WriteRune(rune(u))
	}
}

// Encoder is the shared UTF-16LE/UTF-16BE encoder.
type Encoder struct {
	bigEndian bool
}

func NewLEEncoder() *Encoder { return &Encoder{bigEndian: false} }
func NewBEEncoder() *Encoder { return &Encoder{bigEndian: true} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return u16Length * 2
}
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int { return u16Length * 2 }

func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return byteLength * 2
}
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int { return byteLength * 2 }

func (e *Encoder) writeUnit(dst []byte, pos int, u uint16) {
	if e.bigEndian {
		dst[pos] = byte(u >> 8)
		dst[pos+1] = byte(u)
		return
	}
	dst[pos] = byte(u)
	dst[pos+1] = byte(u >> 8)
}

func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	pos := 0
	i := 0
	for i < len(src) {
		u := src[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(src) && src[i+1] >= 0xDC00 && src[i+1] <= 0xDFFF {
			if len(dst)-pos < 4 {
				return coreresult.EncoderOutputFullResult, i, pos
			}
			e.writeUnit(dst, pos, u)
			e.writeUnit(dst, pos+2, src[i+1])
			pos += 4
			i += 2
			continue
		}
		if len(dst)-pos < 2 {
			return coreresult.EncoderOutputFullResult, i, pos
		}
		e.writeUnit(dst, pos, u)
		pos += 2
		i++
	}
	return coreresult.EncoderInputEmptyResult, i, pos
}

func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	pos := 0
	consumed := 0
	for _, r := range src {
		size := len(string(r))
		if r > 0xFFFF {
			if len(dst)-pos < 4 {
				return coreresult.EncoderOutputFullResult, consumed, pos
			}
			r -= 0x10000
			hi := uint16(0xD800 + (r >> 10))
			lo := uint16(0xDC00 + (r & 0x3FF))
			e.writeUnit(dst, pos, hi)
			e.writeUnit(dst, pos+2, lo)
			pos += 4
		} else {
			if len(dst)-pos < 2 {
				return coreresult.EncoderOutputFullResult, consumed, pos
			}
			e.writeUnit(dst, pos, uint16(r))
			pos += 2
		}
		consumed += size
	}
	return coreresult.EncoderInputEmptyResult, consumed, pos
}
