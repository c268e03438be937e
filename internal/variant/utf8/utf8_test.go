// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8

import "testing"

func TestDecodeASCII(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("hi"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 || dst[0] != 'h' || dst[1] != 'i' {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecodeTwoByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// U+00E9 (e acute) is 0xC3 0xA9 in UTF-8.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0xC3, 0xA9}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 0x00E9 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeAstralSurrogatePair(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// U+1F4A9 (PILE OF POO) is 0xF0 0x9F 0x92 0xA9 in UTF-8.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0xF0, 0x9F, 0x92, 0xA9}, dst, true)
	if result.Kind != 0 || nSrc != 4 || nDst != 2 {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
	if dst[0] != 0xD83D || dst[1] != 0xDCA9 {
		t.Fatalf("dst = %x %x, want surrogate pair for U+1F4A9", dst[0], dst[1])
	}
}

func TestDecodeOverlongRejected(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// 0xE0 0x80 0x80 is an overlong three-byte encoding of NUL; the first
	// trail byte after 0xE0 must be 0xA0..=0xBF.
	result, _, _ := d.DecodeToUTF16([]byte{0xE0, 0x80, 0x80}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Malformed", result)
	}
}

func TestDecodeLoneSurrogateRangeRejected(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// 0xED 0xA0 0x80 would encode U+D800, a surrogate; forbidden in UTF-8.
	result, _, _ := d.DecodeToUTF16([]byte{0xED, 0xA0, 0x80}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Malformed", result)
	}
}

func TestDecodeTruncatedSequenceAcrossCalls(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0xC3}, dst, false)
	if result.Kind != 0 || nSrc != 1 || nDst != 0 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{0xA9}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0x00E9 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestEncodeFromUTF16Astral(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0xD83D, 0xDCA9}, dst, true)
	want := []byte{0xF0, 0x9F, 0x92, 0xA9}
	if result.Kind != 0 || nSrc != 2 || nDst != 4 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst = %v, want %v", dst[:4], want)
		}
	}
}
