// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "testing"

func TestDecoderSniffsUTF8BOM(t *testing.T) {
	d := Windows1252.NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("\xEF\xBB\xBFAz"), dst, true)
	if result.Kind != 0 || nSrc != 5 || nDst != 2 || dst[0] != 'A' || dst[1] != 'z' {
		t.Fatalf("got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
	if d.Encoding() != UTF8 {
		t.Fatalf("encoding = %s, want UTF-8 after sniffing its BOM", d.Encoding().Name())
	}
}

func TestDecoderSniffSplitAcrossCalls(t *testing.T) {
	d := Windows1252.NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("\xEF\xBB"), dst, false)
	if result.Kind != 0 || nSrc != 2 || nDst != 0 {
		t.Fatalf("first call got %v %d %d", result, nSrc, nDst)
	}
	result, nSrc, nDst = d.DecodeToUTF16([]byte("\xBFA"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 1 || dst[0] != 'A' {
		t.Fatalf("second call got %v %d %d dst=%v", result, nSrc, nDst, dst[:nDst])
	}
}

func TestDecoderNoBOMPassesThrough(t *testing.T) {
	d := Windows1252.NewDecoder()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("Az"), dst, true)
	if result.Kind != 0 || nSrc != 2 || nDst != 2 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}
	if d.Encoding() != Windows1252 {
		t.Fatalf("encoding changed to %s without a BOM present", d.Encoding().Name())
	}
}

func TestDecoderBOMRemovalOnlyStripsOwnBOM(t *testing.T) {
	d := UTF8.NewDecoderWithBOMRemoval()
	dst := make([]uint16, 8)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("\xEF\xBB\xBFAz"), dst, true)
	if result.Kind != 0 || nSrc != 5 || nDst != 2 {
		t.Fatalf("got %v %d %d", result, nSrc, nDst)
	}

	d2 := UTF8.NewDecoderWithBOMRemoval()
	// UTF-16LE's BOM is not UTF-8's own BOM; it must not be stripped, so
	// the UTF-8 decoder sees 0xFF, which can never start a UTF-8 sequence.
	result, nSrc, nDst = d2.DecodeToUTF16([]byte("\xFF\xFEAz"), dst, true)
	if result.Kind != 2 || result.Bad != 1 || nSrc != 1 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed(1, 0) on the unstripped 0xFF byte", result, nSrc, nDst)
	}
}

func TestDecoderWithoutBOMHandlingNeverStrips(t *testing.T) {
	d := UTF8.NewDecoderWithoutBOMHandling()
	dst := make([]byte, 16)
	result, nSrc, nDst := d.DecodeToUTF8([]byte("\xEF\xBB\xBFAz"), dst, true)
	if result.Kind != 0 || nSrc != 5 || nDst != 5 {
		t.Fatalf("got %v %d %d dst=%q, want the BOM bytes re-encoded verbatim", result, nSrc, nDst, dst[:nDst])
	}
}
