// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2022jp

import "testing"

func TestDecodeAsciiPassthrough(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("ab"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 || dst[0] != 'a' || dst[1] != 'b' {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecodeRomanYen(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, '(', 'J', 0x5C}, dst, true)
	if result.Kind != 0 || nSrc != 4 || nDst != 1 || dst[0] != 0x00A5 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeKatakana(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, '(', 'I', 0x21}, dst, true)
	if result.Kind != 0 || nSrc != 4 || nDst != 1 || dst[0] != 0xFF61 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeTwoByteJIS0208(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// ESC $ B, then lead 0x21 trail 0x21 -> pointer 0 -> U+3000.
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, '$', 'B', 0x21, 0x21}, dst, true)
	if result.Kind != 0 || nSrc != 5 || nDst != 1 || dst[0] != 0x3000 {
		t.Fatalf("got %v %d %d dst=%x", result, nSrc, nDst, dst[0])
	}
}

func TestDecodeBackToBackEscapeMalformed(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	// ESC ( J immediately followed by ESC ( B, with no content between.
	result, _, _ := d.DecodeToUTF16([]byte{0x1B, '(', 'J', 0x1B, '(', 'B'}, dst, true)
	if result.Kind != 2 || result.Bad != 3 || result.Good != 3 {
		t.Fatalf("result = %v, want Malformed(3,3)", result)
	}
}

func TestDecodeInvalidEscapeThirdByte(t *testing.T) {
	// The lone ESC two bytes back is what's wrong; '(' was already
	// consumed and is good (it gets replayed as content), while 'Z'
	// itself is never consumed here -- it is retried on the next call.
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, '(', 'Z'}, dst, false)
	if result.Kind != 2 || result.Bad != 1 || result.Good != 1 || nSrc != 2 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed(1,1) nSrc=2 nDst=0", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{'Z'}, dst, true)
	if result.Kind != 0 || nSrc != 1 {
		t.Fatalf("got %v %d, want InputEmpty nSrc=1", result, nSrc)
	}
	if nDst != 2 || dst[0] != '(' || dst[1] != 'Z' {
		t.Fatalf("dst = %v, want ['(', 'Z']", dst[:nDst])
	}
}

func TestDecodeIsolatedEscapeNonContinuation(t *testing.T) {
	// ESC followed by a byte that isn't '$' or '(' at all: only the ESC
	// is bad, and the following byte was never consumed, so it reappears
	// untouched at the front of the next call.
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, 'x'}, dst, false)
	if result.Kind != 2 || result.Bad != 1 || result.Good != 0 || nSrc != 1 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed(1,0) nSrc=1 nDst=0", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte{'x'}, dst, true)
	if result.Kind != 0 || nSrc != 1 || nDst != 1 || dst[0] != 'x' {
		t.Fatalf("got %v %d %d dst=%v, want InputEmpty nSrc=1 dst=[x]", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecodeTrailingEscapeFlushedAtEnd(t *testing.T) {
	// A lone ESC followed by '$' with the stream ending right there: the
	// dangling escape attempt is reported as malformed on the final call
	// instead of being silently dropped.
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte{0x1B, '$'}, dst, true)
	if result.Kind != 2 || result.Bad != 1 || nSrc != 2 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed with Bad=1 nSrc=2 nDst=0", result, nSrc, nDst)
	}
}

func TestEncodeAsciiRoundTrip(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 8)
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{'a', 'b'}, dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 || dst[0] != 'a' || dst[1] != 'b' {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestEncodeJIS0208EmitsEscape(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 8)
	// U+3000 -> pointer 0 -> lead/trail 0x21 0x21, preceded by ESC $ B and,
	// since this is the end of the stream, followed by ESC ( B.
	result, nSrc, nDst := e.EncodeFromUTF16([]uint16{0x3000}, dst, true)
	want := []byte{0x1B, '$', 'B', 0x21, 0x21, 0x1B, '(', 'B'}
	if result.Kind != 0 || nSrc != 1 || nDst != len(want) {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
	for i, b := range want {
		if dst[i] != b {
			t.Fatalf("dst = %v, want %v", dst[:nDst], want)
		}
	}
}

func TestEncodeReturnsToAsciiAtEnd(t *testing.T) {
	e := NewEncoder()
	dst := make([]byte, 16)
	result, _, nDst := e.EncodeFromUTF16([]uint16{0x3000, 'a'}, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v", result)
	}
	// The final four bytes must return the stream to ASCII: ESC ( B then 'a'.
	if dst[nDst-1] != 'a' || dst[nDst-2] != 'B' || dst[nDst-3] != '(' || dst[nDst-4] != 0x1B {
		t.Fatalf("dst = %v, want trailing ESC ( B a", dst[:nDst])
	}
}
