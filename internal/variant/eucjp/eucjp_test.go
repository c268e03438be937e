// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eucjp

import "testing"

func TestDecodeASCII(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("hi"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
}

func TestDecodeHalfWidthKatakana(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x8E, 0xA1}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 0xFF61 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeJIS0208(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0xA1, 0xA1}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 0x3000 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestEncodeHalfWidthKatakana(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 4)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0xFF61}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 2 || dst[0] != 0x8E || dst[1] != 0xA1 {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}
