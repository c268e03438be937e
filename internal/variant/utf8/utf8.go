// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8 implements the UTF-8 variant codec: the decoder re-validates
// an incoming byte stream against the WHATWG UTF-8 decoder algorithm rather
// than trusting it, so that malformed sequences are reported the same way
// every other variant reports them, and the encoder is a straightforward
// UTF-16-or-UTF-8-to-UTF-8 re-encoder.
package utf8

import (
	goutf8 "unicode/utf8"

	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
	"github.com/webenc-go/encoding/internal/utf8internal"
)

// Decoder is the streaming UTF-8 validator. It tracks a partially-read
// multi-byte sequence across calls: how many trailing bytes are still
// needed, how many have been seen, the bounds the next trail byte must
// fall in (narrower than generic for the first trail byte after an 0xE0,
// 0xED, 0xF0 or 0xF4 lead), and the code point accumulated so far.
type Decoder struct {
	bytesNeeded   int
	bytesSeen     int
	lowerBoundary byte
	upperBoundary byte
	codePoint     rune
}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Reset() { *d = Decoder{} }

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength + 1 }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength*3 + 1 }

// decodeOne advances the state machine by one byte. When ok is false, b
// was an invalid continuation byte and must be reprocessed by the caller
// as a fresh lead byte (the in-progress sequence is reported as malformed
// without consuming b).
func (d *Decoder) decodeOne(b byte) (r rune, wrote bool, result coreresult.DecoderResult, done bool, reprocess bool) {
	if d.bytesNeeded == 0 {
		class := utf8internal.ClassOf(b)
		switch class {
		case utf8internal.ClassASCIINonPunct, utf8internal.ClassASCIIPunct:
			return rune(b), true, coreresult.DecoderResult{}, false, false
		case utf8internal.ClassInvalid:
			return 0, false, coreresult.Malformed(1, 0), true, false
		}
		lower, upper, needed := utf8internal.TrailRange(class)
		d.bytesNeeded = needed
		d.bytesSeen = 0
		d.lowerBoundary = lower
		d.upperBoundary = upper
		switch class {
		case utf8internal.ClassTwoByte:
			d.codePoint = rune(b & 0x1F)
		case utf8internal.ClassThreeByteNormal, utf8internal.ClassThreeByteSpecialLower, utf8internal.ClassThreeByteSpecialUpper:
			d.codePoint = rune(b & 0x0F)
		default:
			d.codePoint = rune(b & 0x07)
		}
		return 0, false, coreresult.DecoderResult{}, false, false
	}
	var ok bool
	if d.bytesSeen == 0 {
		ok = b >= d.lowerBoundary && b <= d.upperBoundary
	} else {
		ok = utf8internal.GenericTrailOK(b)
	}
	if !ok {
		bad := byte(d.bytesSeen + 1)
		d.bytesNeeded, d.bytesSeen = 0, 0
		return 0, false, coreresult.Malformed(bad, 0), true, true
	}
	d.codePoint = d.codePoint<<6 | rune(b&0x3F)
	d.bytesSeen++
	d.lowerBoundary, d.upperBoundary = 0x80, 0xBF
	if d.bytesSeen < d.bytesNeeded {
		return 0, false, coreresult.DecoderResult{}, false, false
	}
	cp := d.codePoint
	d.bytesNeeded, d.bytesSeen = 0, 0
	return cp, true, coreresult.DecoderResult{}, false, false
}

// decodeLoop drives decodeOne over src. copyASCII is called whenever the
// state machine is between sequences (bytesNeeded == 0); it should copy as
// much of the common ASCII prefix of src and the destination as possible
// and report whether it stopped on a non-ASCII byte (true) or ran one of
// the two buffers dry (false).
func (d *Decoder) decodeLoop(src []byte, hasSpace func() bool, write func(rune), copyASCII func(*handle.ByteSource) bool) (coreresult.DecoderResult, int) {
	source := handle.NewByteSource(src)
	for {
		if d.bytesNeeded == 0 {
			if !copyASCII(source) {
				if len(source.Remaining()) == 0 {
					return coreresult.DecoderInputEmptyResult, source.Consumed()
				}
				return coreresult.DecoderOutputFullResult, source.Consumed()
			}
		}
		b, ok := source.Peek()
		if !ok {
			return coreresult.DecoderInputEmptyResult, source.Consumed()
		}
		if !hasSpace() {
			return coreresult.DecoderOutputFullResult, source.Consumed()
		}
		r, wrote, result, done, reprocess := d.decodeOne(b)
		if !reprocess {
			source.Advance(1)
		}
		if done {
			return result, source.Consumed()
		}
		if wrote {
			write(r)
		}
	}
}

func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	dest := handle.NewUtf16Destination(dst)
	result, consumed := d.decodeLoop(src, dest.SpaceAstral, func(r rune) {
		if r > 0xFFFF {
			dest.WriteAstral(r)
		} else {
			dest.WriteBMP(uint16(r))
		}
	}, func(s *handle.ByteSource) bool {
		_, found := dest.CopyASCII(s)
		return found
	})
	return result, consumed, dest.Written()
}

func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	result, consumed := d.decodeLoop(src, dest.SpaceAstral, dest.WriteRune, func(s *handle.ByteSource) bool {
		_, found := dest.CopyASCII(s)
		return found
	})
	return result, consumed, dest.Written()
}

// Encoder re-encodes UTF-16 or UTF-8 input as UTF-8 output. It carries no
// state of its own: every WHATWG encoding's "to UTF-8" direction is this
// same identity-shaped transcode.
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
		n := goutf8.RuneLen(r)
		if n < 0 {
			n = 3 // unpaired surrogate encodes as U+FFFD
		}
		if len(dst)-dest.Written() < n {
			return coreresult.EncoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteRune(r)
		source.Advance(size)
	}
}

func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	consumed := 0
	for _, r := range src {
		size := len(string(r))
		n := goutf8.RuneLen(r)
		if n < 0 {
			n = 3
		}
		if len(dst)-dest.Written() < n {
			return coreresult.EncoderOutputFullResult, consumed, dest.Written()
		}
		dest.WriteRune(r)
		consumed += size
	}
	return coreresult.EncoderInputEmptyResult, consumed, dest.Written()
}
