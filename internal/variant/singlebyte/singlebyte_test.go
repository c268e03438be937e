// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package singlebyte

import "testing"

// asciiIdentityTable maps every high byte to U+F700 plus its offset from 0x80 so
// tests can exercise the high half without depending on a real encoding's
// data table; index 0 (byte 0x80) is left unassigned to exercise the
// malformed path.
func asciiIdentityTable() *Table {
	var t Table
	for i := 1; i < 128; i++ {
		t[i] = uint16(0xF700 + i)
	}
	return &t
}

func TestDecodeToUTF16ASCIIPassthrough(t *testing.T) {
	d := NewDecoder(asciiIdentityTable())
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("Hi!"), dst, true)
	if result.Kind != 0 { // DecoderInputEmpty
		t.Fatalf("result = %v, want InputEmpty", result)
	}
	if nSrc != 3 || nDst != 3 {
		t.Fatalf("consumed/written = %d/%d, want 3/3", nSrc, nDst)
	}
	if dst[0] != 'H' || dst[1] != 'i' || dst[2] != '!' {
		t.Fatalf("dst = %v", dst[:3])
	}
}

func TestDecodeToUTF16HighByte(t *testing.T) {
	d := NewDecoder(asciiIdentityTable())
	dst := make([]uint16, 1)
	_, _, nDst := d.DecodeToUTF16([]byte{0x81}, dst, true)
	if nDst != 1 || dst[0] != 0xF701 {
		t.Fatalf("dst = %v", dst[:nDst])
	}
}

func TestDecodeToUTF16Unassigned(t *testing.T) {
	d := NewDecoder(asciiIdentityTable())
	dst := make([]uint16, 1)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x80}, dst, true)
	if result.Kind != 2 { // DecoderMalformed
		t.Fatalf("result = %v, want Malformed", result)
	}
	if result.Bad != 1 || result.Good != 0 {
		t.Fatalf("result = %v, want Malformed(1, 0)", result)
	}
	if nSrc != 0 || nDst != 0 {
		t.Fatalf("consumed/written = %d/%d, want 0/0", nSrc, nDst)
	}
}

func TestEncodeFromUTF16RoundTrip(t *testing.T) {
	table := asciiIdentityTable()
	e := NewEncoder(table)
	src := []uint16{'H', 'i', 0xF701}
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16(src, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v, want InputEmpty", result)
	}
	if nSrc != 3 || nDst != 3 {
		t.Fatalf("consumed/written = %d/%d, want 3/3", nSrc, nDst)
	}
	if dst[0] != 'H' || dst[1] != 'i' || dst[2] != 0x81 {
		t.Fatalf("dst = %v", dst[:3])
	}
}

func TestEncodeFromUTF16Unmappable(t *testing.T) {
	e := NewEncoder(asciiIdentityTable())
	dst := make([]byte, 8)
	result, _, _ := e.EncodeFromUTF16([]uint16{0x3042}, dst, true)
	if result.Kind != 2 { // EncoderUnmappable
		t.Fatalf("result = %v, want Unmappable", result)
	}
	if result.Unmappable != 0x3042 {
		t.Fatalf("unmappable rune = %U", result.Unmappable)
	}
}

func TestEncodeFromUTF8RoundTrip(t *testing.T) {
	e := NewEncoder(asciiIdentityTable())
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF8("Hi", dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v, want InputEmpty", result)
	}
	if nSrc != 2 || nDst != 2 {
		t.Fatalf("consumed/written = %d/%d, want 2/2", nSrc, nDst)
	}
}
