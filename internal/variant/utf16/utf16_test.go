// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf16

import "testing"

func TestDecodeLEBasic(t *testing.T) {
	d := NewLEDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x41, 0x00}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 'A' {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeBEBasic(t *testing.T) {
	d := NewBEDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x00, 0x41}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 'A' {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeLESurrogatePair(t *testing.T) {
	d := NewLEDecoder()
	dst := make([]uint16, 4)
	// U+1F4A9 as LE surrogate pair: D83D DCA9 -> bytes 3D D8 A9 DC.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x3D, 0xD8, 0xA9, 0xDC}, dst, true)
	if result.Kind != 0 || nSrc != 4 || nDst != 2 || dst[0] != 0xD83D || dst[1] != 0xDCA9 {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecodeLOddByteAcrossCalls(t *testing.T) {
	d := NewLEDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x41}, dst, false)
	if result.Kind != 0 || nSrc != 1 || nDst != 0 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{0x00}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 'A' {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeLoneHighSurrogate(t *testing.T) {
	d := NewLEDecoder()
	dst := make([]uint16, 4)
	// D800 followed by ASCII 'A': the lone high surrogate becomes U+FFFD.
	result, _, nDst := d.DecodeToUTF16([]byte{0x00, 0xD8, 0x41, 0x00}, dst, true)
	if result.Kind != 0 || nDst != 2 || dst[0] != 0xFFFD || dst[1] != 'A' {
		t.Fatalf("got %v nDst=%d dst=%v", result, nDst, dst[:nDst])
	}
}

func TestEncodeLESurrogatePair(t *testing.T) {
	e := NewLEEncoder()
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0xD83D, 0xDCA9}, dst, true)
	want := []byte{0x3D, 0xD8, 0xA9, 0xDC}
	if result.Kind != 0 || nSrc != 2 || nDst != 4 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst = %v, want %v", dst[:4], want)
		}
	}
}
