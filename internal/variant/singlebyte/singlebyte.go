// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

// Package singlebyte implements the shared decoder/encoder shape used by
// every single-byte legacy encoding (IBM866, the ISO-8859 family, KOI8-R/U,
// macintosh, the windows-125x family, x-mac-cyrillic, ...). Every one of
// these maps byte values 0x00..=0x7F to themselves and byte values
// 0x80..=0xFF through a 128-entry table to a BMP code point, with 0 in the
// table meaning the byte is unassigned. The table itself lives in
// internal/tables; this package only knows the shape.
package singlebyte

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/handle"
)

// Table is the shared data shape: Table[b-0x80] is the code point byte b
// decodes to, or 0 if b is unassigned in this encoding.
type Table = [128]uint16

// Decoder decodes a single-byte encoding driven by a fixed Table.
type Decoder struct {
	table *Table
}

// NewDecoder returns a decoder for the encoding whose high half is table.
func NewDecoder(table *Table) *Decoder {
	return &Decoder{table: table}
}

// Reset is a no-op: single-byte decoding carries no state between calls.
func (d *Decoder) Reset() {}

func (d *Decoder) MaxUTF16BufferLength(byteLength int) int { return byteLength }

func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int { return byteLength * 3 }

func (d *Decoder) MaxUTF8BufferLength(byteLength int) int { return byteLength * 3 }

// DecodeToUTF16 decodes src into dst, stopping at the first unassigned
// high byte.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf16Destination(dst)
	for {
		if _, found := dest.CopyASCII(source); !found {
			if len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
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
		mapped := d.table[int(b)-0x80]
		if mapped == 0 {
			return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteBMP(mapped)
		source.Advance(1)
	}
}

// DecodeToUTF8 is DecodeToUTF16's UTF-8 destination counterpart.
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	source := handle.NewByteSource(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		if _, found := dest.CopyASCII(source); !found {
			if len(source.Remaining()) == 0 {
				return coreresult.DecoderInputEmptyResult, source.Consumed(), dest.Written()
			}
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
		mapped := d.table[int(b)-0x80]
		if mapped == 0 {
			return coreresult.Malformed(1, 0), source.Consumed(), dest.Written()
		}
		if !dest.SpaceBMP() {
			return coreresult.DecoderOutputFullResult, source.Consumed(), dest.Written()
		}
		dest.WriteRune(rune(mapped))
		source.Advance(1)
	}
}

// Encoder encodes a single-byte encoding driven by a fixed Table, via a
// reverse index built once at construction.
type Encoder struct {
	table   *Table
	reverse map[uint16]byte
}

// NewEncoder returns an encoder for the encoding whose high half is table.
// The reference implementation searches table backwards byte by byte on
// every call, noting the low quarter is the least probable match; a
// prebuilt reverse map gets the same "last writer wins" tie-break (the
// Rust loop starts from index 127 and keeps the first, i.e. highest-byte,
// match) without repeating a 128-entry scan per character encoded.
func NewEncoder(table *Table) *Encoder {
	reverse := make(map[uint16]byte, 128)
	for i := 0; i < 128; i++ {
		c := table[i]
		if c == 0 {
			continue
		}
		if _, ok := reverse[c]; !ok {
			reverse[c] = byte(i + 128)
		}
	}
	// Re-walk upward so the highest-byte mapping is written last and wins
	// ties, matching the original's backward scan.
	for i := 0; i < 128; i++ {
		c := table[i]
		if c == 0 {
			continue
		}
		reverse[c] = byte(i + 128)
	}
	return &Encoder{table: table, reverse: reverse}
}

func (e *Encoder) Reset() {}

func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int { return u16Length }

func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int { return u16Length * 12 }

func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int { return byteLength }

func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int { return byteLength * 12 }

func (e *Encoder) encodeRune(c rune) (byte, bool) {
	if c <= 0x7F {
		return byte(c), true
	}
	if c > 0xFFFF {
		return 0, false
	}
	b, ok := e.reverse[uint16(c)]
	return b, ok
}

// EncodeFromUTF16 encodes src into dst, stopping at the first character
// with no representation in this encoding.
func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	source := handle.NewUtf16Source(src)
	dest := handle.NewUtf8Destination(dst)
	for {
		rem := source.Remaining()
		if len(rem) == 0 {
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		r, size, needMore := source.Next(last)
		if needMore {
			return coreresult.EncoderInputEmptyResult, source.Consumed(), dest.Written()
		}
		b, ok := e.encodeRune(r)
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

// EncodeFromUTF8 is EncodeFromUTF16's UTF-8 source counterpart.
func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	dest := handle.NewUtf8Destination(dst)
	consumed := 0
	for _, r := range src {
		size := len(string(r))
		b, ok := e.encodeRune(r)
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
