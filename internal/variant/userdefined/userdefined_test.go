// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userdefined

import "testing"

func TestDecodeASCIIPassthrough(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("Az"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 || dst[0] != 'A' || dst[1] != 'z' {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecodeHighByteToPUA(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x80}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0xF780 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestEncodePUARoundTrip(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 4)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0xF7FF}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0xFF {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestEncodeUnmappable(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 4)
	result, _, _ := e.EncodeFromUTF16([]uint16{0x3042}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Unmappable", result)
	}
}
