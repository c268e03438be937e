// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ascii provides bulk-copy primitives for moving runs of ASCII
// bytes between 8-bit and 16-bit buffers. The decoders with an ASCII fast
// path (Big5, EUC-JP, EUC-KR, Shift_JIS, the single-byte charmaps,
// x-user-defined and UTF-8) call through here, by way of the handle
// package's CopyASCII methods, before falling back to their own
// byte-at-a-time state machine, the same way golang.org/x/text/encoding's
// Transform loops special-case the sub-0x80 byte before doing table work.
// The encoders and the GBK/gb18030, ISO-2022-JP, UTF-16 and replacement
// decoders do not use this package.
//
// Three tiers are available in principle (wide SIMD lanes, an 8-byte ALU
// word scan, and a naive per-byte loop); this package implements the
// latter two. A correct implementation need not have the SIMD tier at all
// -- it only buys throughput, never changes output -- and Go has no
// portable way to express it without per-arch assembly, which nothing
// else in this module's ancestry uses either.
package ascii

import "encoding/binary"

const wordHighBitMask = 0x8080808080808080

// ASCIIToASCII copies the longest run of bytes common to dst and src that
// are valid ASCII (< 0x80), byte for byte. It reports the number of bytes
// copied and whether the copy stopped because one of the buffers ran out
// (clean) rather than because of a non-ASCII byte.
func ASCIIToASCII(dst, src []byte) (n int, clean bool) {
	limit := len(dst)
	if len(src) < limit {
		limit = len(src)
	}
	i := 0
	for i+8 <= limit {
		word := binary.LittleEndian.Uint64(src[i : i+8])
		if word&wordHighBitMask != 0 {
			break
		}
		binary.LittleEndian.PutUint64(dst[i:i+8], word)
		i += 8
	}
	for ; i < limit; i++ {
		b := src[i]
		if b >= 0x80 {
			return i, false
		}
		dst[i] = b
	}
	return limit, true
}

// ASCIIToBasicLatin widens an ASCII byte run into 16-bit code units (each
// byte zero-extended), stopping at the first non-ASCII byte or when either
// buffer is exhausted.
func ASCIIToBasicLatin(dst []uint16, src []byte) (n int, clean bool) {
	limit := len(dst)
	if len(src) < limit {
		limit = len(src)
	}
	i := 0
	for i+8 <= limit {
		word := binary.LittleEndian.Uint64(src[i : i+8])
		if word&wordHighBitMask != 0 {
			break
		}
		for j := 0; j < 8; j++ {
			dst[i+j] = uint16(src[i+j])
		}
		i += 8
	}
	for ; i < limit; i++ {
		b := src[i]
		if b >= 0x80 {
			return i, false
		}
		dst[i] = uint16(b)
	}
	return limit, true
}

// BasicLatinToASCII narrows 16-bit code units in 0x00..=0x7F into bytes,
// stopping at the first code unit >= 0x80 or when either buffer is
// exhausted.
func BasicLatinToASCII(dst []byte, src []uint16) (n int, clean bool) {
	limit := len(dst)
	if len(src) < limit {
		limit = len(src)
	}
	i := 0
	for ; i < limit; i++ {
		u := src[i]
		if u >= 0x80 {
			return i, false
		}
		dst[i] = byte(u)
	}
	return limit, true
}

// IsAllASCII reports whether every byte in b is < 0x80.
func IsAllASCII(b []byte) bool {
	i := 0
	for i+8 <= len(b) {
		if binary.LittleEndian.Uint64(b[i:i+8])&wordHighBitMask != 0 {
			return false
		}
		i += 8
	}
	for ; i < len(b); i++ {
		if b[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IsBasicLatin reports whether every code unit in u is < 0x80.
func IsBasicLatin(u []uint16) bool {
	for _, c := range u {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
