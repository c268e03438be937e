// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handle implements the bounds-checking discipline shared by every
// variant codec: a source wraps a borrowed input slice and a read cursor, a
// destination wraps a borrowed output slice and a write cursor, and the two
// only ever advance together with a capacity check.
//
// The reference implementation (encoding_rs) expresses this as single-use,
// borrow-checked handle types so the *type* at a program point proves how
// much output room is available. Go has no such linear-typing discipline,
// so here the same invariant is kept by convention instead: callers must
// call a Space* method immediately before the matching Write* call and must
// not call Write* without a preceding successful check. This mirrors how
// golang.org/x/text/encoding's Transform loops do "if nDst+n > len(dst) {
// return ErrShortDst }" immediately before every write.
package handle

import (
	"unicode/utf8"

	"github.com/webenc-go/encoding/internal/ascii"
)

// ByteSource wraps a borrowed byte slice with a read cursor.
type ByteSource struct {
	buf []byte
	pos int
}

// NewByteSource wraps buf for reading from the start.
func NewByteSource(buf []byte) *ByteSource {
	return &ByteSource{buf: buf}
}

// Peek returns the next unread byte without consuming it. ok is false if
// the source is exhausted.
func (s *ByteSource) Peek() (b byte, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.pos], true
}

// PeekAt returns the byte offset bytes past the read cursor, for
// multi-byte lookahead (e.g. a trail byte not yet committed).
func (s *ByteSource) PeekAt(offset int) (b byte, ok bool) {
	i := s.pos + offset
	if i >= len(s.buf) {
		return 0, false
	}
	return s.buf[i], true
}

// Advance commits n previously peeked bytes as consumed.
func (s *ByteSource) Advance(n int) { s.pos += n }

// Consumed returns the number of bytes consumed so far.
func (s *ByteSource) Consumed() int { return s.pos }

// Remaining returns the unconsumed suffix of the wrapped buffer.
func (s *ByteSource) Remaining() []byte { return s.buf[s.pos:] }

// Utf16Destination wraps a borrowed []uint16 output buffer with a write
// cursor.
type Utf16Destination struct {
	buf []uint16
	pos int
}

// NewUtf16Destination wraps buf for writing from the start.
func NewUtf16Destination(buf []uint16) *Utf16Destination {
	return &Utf16Destination{buf: buf}
}

// Written returns the number of code units written so far.
func (d *Utf16Destination) Written() int { return d.pos }

// SpaceBMP reports whether there is room for one more BMP code unit.
func (d *Utf16Destination) SpaceBMP() bool { return d.pos < len(d.buf) }

// SpaceAstral reports whether there is room for a surrogate pair.
func (d *Utf16Destination) SpaceAstral() bool { return d.pos+1 < len(d.buf) }

// WriteASCII writes a single ASCII byte as one code unit.
func (d *Utf16Destination) WriteASCII(b byte) {
	d.buf[d.pos] = uint16(b)
	d.pos++
}

// WriteBMP writes a single BMP code unit (caller guarantees it is not a
// surrogate half).
func (d *Utf16Destination) WriteBMP(u uint16) {
	d.buf[d.pos] = u
	d.pos++
}

// WriteAstral writes an astral code point as a surrogate pair.
func (d *Utf16Destination) WriteAstral(r rune) {
	r -= 0x10000
	d.buf[d.pos] = uint16(0xD800 + (r >> 10))
	d.buf[d.pos+1] = uint16(0xDC00 + (r & 0x3FF))
	d.pos += 2
}

// WriteSurrogatePair writes an already-split surrogate pair verbatim.
func (d *Utf16Destination) WriteSurrogatePair(high, low uint16) {
	d.buf[d.pos] = high
	d.buf[d.pos+1] = low
	d.pos += 2
}

// CopyASCII copies the longest ASCII run common to d and src using the
// bulk primitive, advancing both cursors. It returns the first non-ASCII
// byte and true if one was found before either buffer was exhausted.
func (d *Utf16Destination) CopyASCII(src *ByteSource) (nonASCII byte, found bool) {
	rem := src.Remaining()
	n, clean := ascii.ASCIIToBasicLatin(d.buf[d.pos:], rem)
	src.Advance(n)
	d.pos += n
	if !clean {
		return rem[n], true
	}
	return 0, false
}

// Utf8Destination wraps a borrowed []byte output buffer with a write
// cursor, used when the decode target is UTF-8.
type Utf8Destination struct {
	buf []byte
	pos int
}

// NewUtf8Destination wraps buf for writing from the start.
func NewUtf8Destination(buf []byte) *Utf8Destination {
	return &Utf8Destination{buf: buf}
}

// Written returns the number of bytes written so far.
func (d *Utf8Destination) Written() int { return d.pos }

// SpaceBMP reports whether there is room for a BMP code point (up to 3
// bytes of UTF-8).
func (d *Utf8Destination) SpaceBMP() bool { return len(d.buf)-d.pos >= 3 }

// SpaceAstral reports whether there is room for an astral code point (up
// to 4 bytes of UTF-8).
func (d *Utf8Destination) SpaceAstral() bool { return len(d.buf)-d.pos >= 4 }

// WriteASCII writes a single ASCII byte.
func (d *Utf8Destination) WriteASCII(b byte) {
	d.buf[d.pos] = b
	d.pos++
}

// WriteRune encodes r as UTF-8. Caller must have checked SpaceBMP (r <=
// 0xFFFF) or SpaceAstral (r > 0xFFFF) first.
func (d *Utf8Destination) WriteRune(r rune) {
	d.pos += utf8.EncodeRune(d.buf[d.pos:], r)
}

// WriteString appends a short literal string (used for Big5's two-rune
// combining-character special cases). Caller must have reserved len(s)
// bytes.
func (d *Utf8Destination) WriteString(s string) {
	d.pos += copy(d.buf[d.pos:], s)
}

// CopyASCII copies the longest ASCII run common to d and src, advancing
// both cursors. It returns the first non-ASCII byte and true if one was
// found before either buffer was exhausted.
func (d *Utf8Destination) CopyASCII(src *ByteSource) (nonASCII byte, found bool) {
	rem := src.Remaining()
	n, clean := ascii.ASCIIToASCII(d.buf[d.pos:], rem)
	src.Advance(n)
	d.pos += n
	if !clean {
		return rem[n], true
	}
	return 0, false
}

// Utf16Source wraps a borrowed []uint16 input buffer with a read cursor,
// used by encoders that take UTF-16 input.
type Utf16Source struct {
	buf []uint16
	pos int
}

// NewUtf16Source wraps buf for reading from the start.
func NewUtf16Source(buf []uint16) *Utf16Source {
	return &Utf16Source{buf: buf}
}

// Consumed returns the number of code units consumed so far.
func (s *Utf16Source) Consumed() int { return s.pos }

// Remaining returns the unconsumed suffix of the wrapped buffer.
func (s *Utf16Source) Remaining() []uint16 { return s.buf[s.pos:] }

// Next decodes the next character, combining an unpaired surrogate (or a
// lone low surrogate, or a high surrogate at the end of the buffer with
// last true) into U+FFFD per spec. needMore is true only when a high
// surrogate is the last code unit available and last is false, meaning
// the caller should stop and wait for more input instead of consuming it.
func (s *Utf16Source) Next(last bool) (r rune, size int, needMore bool) {
	u := s.buf[s.pos]
	if u < 0xD800 || u > 0xDFFF {
		return rune(u), 1, false
	}
	if u >= 0xDC00 {
		// Lone low surrogate.
		return 0xFFFD, 1, false
	}
	// High surrogate.
	if s.pos+1 >= len(s.buf) {
		if !last {
			return 0, 0, true
		}
		return 0xFFFD, 1, false
	}
	low := s.buf[s.pos+1]
	if low < 0xDC00 || low > 0xDFFF {
		return 0xFFFD, 1, false
	}
	return (rune(u)-0xD800)<<10 + (rune(low) - 0xDC00) + 0x10000, 2, false
}

// Advance commits n code units as consumed.
func (s *Utf16Source) Advance(n int) { s.pos += n }
