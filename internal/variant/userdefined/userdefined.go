// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package userdefined implements x-user-defined: a single-byte codec with
// no lookup table at all, since its mapping is a closed-form formula
// (bytes 0x00..=0x7F pass through as themselves, 0x80..=0xFF map to the
// Private Use Area starting at U+F780).
package userdefined

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
)

type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() {}

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength + 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	return byteLength*3 + 1
}

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength*3 + 1 }

func decode(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return 0xF780 + rune(b-0x80)
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	for {
		if _, found := dest.CopyASCII(source); !found {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		b, ok := source.Peek()
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		source.Advance(1)
		dest.WriteBMP(uint16(decode(b)))
	}
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if _, found := dest.CopyASCII(source); !found {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		b, ok := source.Peek()
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		source.Advance(1)
		dest.WriteRune(decode(b))
	}
}

type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length }
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int                   { return u16Length * 12 }
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength }
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int                  { return byteLength * 12 }

func encode(r rune) (byte, bool) {
	if r < 0x80 {
		return byte(r), true
	}
	if r >= 0xF780 && r <= 0xF7FF {
		return byte(r-0xF780) + 0x80, true
	}
	return 0, false
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
		b, ok := encode(r)
		if !ok {
			return coreresult.Unmappable(r), source.Consumed(), dest.Written()
		}
		if dest.Written() >= len(dst) {
			return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteASCII(b)
		source.Advance(size)
	}
}

func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	consumed := 0
	for _, r := range src {
		size := len(string(r))
		b, ok := encode(r)
		if !ok {
			return coreresult.Unmappable(r), consumed, dest.Written()
		}
		if dest.Written() >= len(dst) {
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		dest.WriteASCII(b)
		consumed += size
	}
	return coreresult.EncoderInputEmptyResult, consumed, dest.Written()
}
