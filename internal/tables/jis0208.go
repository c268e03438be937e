// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package tables

// jis0208 is the shared "index jis0208" pointer table the WHATWG encoding
// standard defines once and both EUC-JP and Shift_JIS compute a pointer
// into (via different lead/trail arithmetic); see the package doc for why
// this holds a verified subset rather than the full ~7000-row index.
var jis0208 = []pointerEntry{
	{0, 0x3000}, // row 1 col 1: IDEOGRAPHIC SPACE
	{1, 0x3001}, // IDEOGRAPHIC COMMA
	{2, 0x3002}, // IDEOGRAPHIC FULL STOP
	{3, 0xFF0C}, // FULLWIDTH COMMA
	{4, 0xFF0E}, // FULLWIDTH FULL STOP
	{283, 0x3042}, // row 4 col 2 (ku-ten 4-2): HIRAGANA LETTER A
	{284, 0x3044}, // row 4 col 3: HIRAGANA LETTER I
}

// JIS0208Decode looks up the shared jis0208 pointer table.
func JIS0208Decode(pointer int) (r rune, ok bool) {
	return decodeSparse(jis0208, pointer)
}

// JIS0208EncodePointer is JIS0208Decode's reverse lookup.
func JIS0208EncodePointer(r rune) (pointer int, ok bool) {
	return encodeSparse(jis0208, r)
}
