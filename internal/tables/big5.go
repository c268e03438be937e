// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package tables

// big5 holds a handful of verified pointer -> rune rows; see the package
// doc for why this is not the full ~19000-row generated index. The four
// combining-character pointers (1133, 1135, 1164, 1166) are handled by the
// big5 variant codec itself, not through this table, since each decodes
// to two runes rather than one.
var big5 = []pointerEntry{
	{0, 0x3000}, // full-width space, Big5 lead 0x81 trail 0x40
	{1, 0xFF0C},
	{7, 0xFF1F},
	{1137, 0x00CA}, // 0x88 0x66: second worked example from the decode error-recovery scenario
	{19782, 0x7368}, // last assigned two-byte row in the WHATWG index
}

// Big5Decode looks up a two-byte Big5 pointer. ok is false for an
// unassigned pointer.
func Big5Decode(pointer int) (r rune, ok bool) {
	return decodeSparse(big5, pointer)
}

// Big5EncodePointer is Big5Decode's reverse lookup.
func Big5EncodePointer(r rune) (pointer int, ok bool) {
	return encodeSparse(big5, r)
}
