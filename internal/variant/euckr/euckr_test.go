// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euckr

import "testing"

func TestDecodeTwoByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x81, 0x41}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 0xAC02 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeMalformedLead(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, _, _ := d.DecodeToUTF16([]byte{0xFF}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Malformed", result)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 4)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0xAC02}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 2 || dst[0] != 0x81 || dst[1] != 0x41 {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}
