// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replacement implements the "replacement" encoding: a decoder
// that reports the entire input as a single fatal error the first time it
// is asked to decode anything, and an encoder that exists only so the
// variant can be paired with an Encoding value; per the standard it is
// never actually reachable from the UTF-8 encode path.
package replacement

import (
	"github.com/webenc-go/encoding/internal/coreresult"
)

// Decoder reports its entire (non-empty) input as malformed exactly once,
// then behaves as an empty decoder for any further input.
type Decoder struct {
	errorReported bool
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { d.errorReported = false }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return 0 }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return 3 }

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	if d.errorReported || len(src) == 0 {
		return coreresult.DecoderInputEmptyResult, len(src), 0
	}
	d.errorReported = true
	return coreresult.Malformed(1, 0), len(src), 0
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	if d.errorReported || len(src) == 0 {
		return coreresult.DecoderInputEmptyResult, len(src), 0
	}
	d.errorReported = true
	return coreresult.Malformed(1, 0), len(src), 0
}

// Encoder is the replacement encoding's (UTF-8) encoder. The standard
// defines replacement's encode direction as identical to UTF-8's -- it is
// only the decode direction that is special.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return u16Length * 3
}
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int { return u16Length * 3 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return byteLength
}
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int { return byteLength }

func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	pos := 0
	for i, u := range src {
		if u >= 0xD800 && u <= 0xDFFF {
			return coreresult.EncoderInputEmptyResult, i, pos
		}
		if pos+3 > len(dst) {
			return coreresult.EncoderOutputFullResult, i, pos
		}
		n := utf8Encode(dst[pos:], rune(u))
		pos += n
	}
	return coreresult.EncoderInputEmptyResult, len(src), pos
}

func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	if len(dst) < len(src) {
		return coreresult.EncoderOutputFullResult, 0, 0
	}
	n := copy(dst, src)
	return coreresult.EncoderInputEmptyResult, n, n
}

func utf8Encode(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r&0x3F)
		return 2
	default:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	}
}
