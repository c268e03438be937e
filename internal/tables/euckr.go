// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package tables

// euckr is the EUC-KR pointer table. See the package doc for why this
// holds a verified subset rather than the full ~17000-row index.
var euckr = []pointerEntry{
	{0, 0xAC02}, // lead 0x81 trail 0x41
	{1, 0xAC03},
}

// EUCKRDecode looks up an EUC-KR pointer.
func EUCKRDecode(pointer int) (r rune, ok bool) {
	return decodeSparse(euckr, pointer)
}

// EUCKREncodePointer is EUCKRDecode's reverse lookup.
func EUCKREncodePointer(r rune) (pointer int, ok bool) {
	return encodeSparse(euckr, r)
}
