// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbk

import "testing"

func TestDecodeEuro(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x80}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0x20AC {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeTwoByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x81, 0x40}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 0x4E02 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeFourByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x81, 0x30, 0x81, 0x30}, dst, true)
	if result.Kind != 0 || nSrc != 4 || nDst != 1 || dst[0] != 0x0080 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestEncodeGBKRejectsExtended(t *testing.T) {
	e := NewGBKEncoder()
	dst := make([]byte, 8)
	result, _, _ := e.EncodeFromUTF16([]uint16{0x0080}, dst, true)
	if result.Kind != 2 {
		t.Fatalf("result = %v, want Unmappable", result)
	}
}

func TestEncodeGB18030Extended(t *testing.T) {
	e := NewGB18030Encoder()
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0x0080}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 4 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	want := []byte{0x81, 0x30, 0x81, 0x30}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst = %v, want %v", dst[:4], want)
		}
	}
}

func TestDecodeFourByteRequeueAfterBadRange(t *testing.T) {
	// 0xE3 0x32 0x9A 0x36 starts a four-byte sequence whose range index has
	// no mapping, so it reports the lead byte malformed and requeues the
	// held bytes: 0x32 replays as ASCII '2', 0x9A becomes the new lead byte
	// for a second four-byte sequence with 0x36 0x81 0x30, which succeeds.
	d := NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0xE3, 0x32, 0x9A, 0x36}, dst, false)
	if result.Kind != 2 || result.Bad != 1 || result.Good != 2 || nSrc != 3 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed(1,2) nSrc=3 nDst=0", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{0x36, 0x81, 0x30}, dst, true)
	if result.Kind != 0 || nSrc != 3 {
		t.Fatalf("got %v %d %d, want InputEmpty nSrc=3", result, nSrc, nDst)
	}
	if nDst != 3 || dst[0] != '2' || dst[1] != 0xD882 || dst[2] != 0xDDB8 {
		t.Fatalf("dst = %x, want ['2', surrogate pair for U+309B8]", dst[:nDst])
	}
}

func TestEncodeEuroGBK(t *testing.T) {
	e := NewGBKEncoder()
	dst := make([]byte, 4)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0x20AC}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 0x80 {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}
