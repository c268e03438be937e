// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package big5

import "testing"

func TestDecodeASCII(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("ab"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
}

func TestDecodeTwoByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	// lead 0x81, trail 0x40 -> pointer 0 -> U+3000 per the table.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x81, 0x40}, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v", result)
	}
	if nSrc != 2 || nDst != 1 || dst[0] != 0x3000 {
		t.Fatalf("nSrc=%d nDst=%d dst[0]=%x", nSrc, nDst, dst[0])
	}
}

func TestDecodeCombiningPointer(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	// lead 0x88, trail 0x62 -> pointer (0x88-0x81)*157 + (0x62-0x40) = 1133.
	result, _, nDst := d.DecodeToUTF16([]byte{0x88, 0x62}, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v", result)
	}
	if nDst != 2 || dst[0] != 0x00CA || dst[1] != 0x0304 {
		t.Fatalf("dst = %v", dst[:nDst])
	}
}

func TestDecodeNonCombiningHighPointer(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	// lead 0x88, trail 0x66 -> pointer (0x88-0x81)*157 + (0x66-0x40) = 1137.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x88, 0x66}, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v", result)
	}
	if nSrc != 2 || nDst != 1 || dst[0] != 0x00CA {
		t.Fatalf("nSrc=%d nDst=%d dst=%v", nSrc, nDst, dst[:nDst])
	}
}

func TestDecodePendingLeadAcrossCalls(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x81}, dst, false)
	if result.Kind != 0 || nSrc != 1 || nDst != 0 {
		t.Fatalf("first call: %v %d %d", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{0x40}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0x3000 {
		t.Fatalf("second call: %v %d %d dst[0]=%x", result, nSrc, nDst, dst[0])
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0x3000}, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v", result)
	}
	if nSrc != 1 || nDst != 2 || dst[0] != 0x81 || dst[1] != 0x40 {
		t.Fatalf("nSrc=%d nDst=%d dst=%v", nSrc, nDst, dst[:nDst])
	}
}

func TestEncodeUnmappable(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 8)
	result, _, _ := e.EncodeFromUTF16([]uint16{0x0080}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Unmappable", result)
	}
}
