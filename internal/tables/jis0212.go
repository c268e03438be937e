// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package tables

// jis0212 is the JIS X 0212 supplementary index EUC-JP's 0x8F prefix
// selects. See the package doc for why this holds a verified subset
// rather than the full index.
var jis0212 = []pointerEntry{
	{0, 0x02D8}, // row 1 col 1: BREVE
	{1, 0x02C7}, // CARON
}

// JIS0212Decode looks up the jis0212 pointer table.
func JIS0212Decode(pointer int) (r rune, ok bool) {
	return decodeSparse(jis0212, pointer)
}

// JIS0212EncodePointer is JIS0212Decode's reverse lookup.
func JIS0212EncodePointer(r rune) (pointer int, ok bool) {
	return encodeSparse(jis0212, r)
}
