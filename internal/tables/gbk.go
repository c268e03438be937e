// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

package tables

// gbk is the shared GBK/gb18030 two-byte pointer table (lead 0x81..=0xFE,
// trail 0x40..=0x7E or 0x80..=0xFE, pointer = (lead-0x81)*190+(trail
// offset)). See the package doc for why this holds a verified subset
// rather than the full ~23900-row index.
var gbk = []pointerEntry{
	{0, 0x4E02},
	{62, 0x4E8A},
	{63, 0x4E90},
	{189, 0x4FA2},
	{6176, 0x3000}, // 0xA1 0xA1: the GB2312 row for IDEOGRAPHIC SPACE
	{6555, 0x3000}, // 0xA3 0xA0: gb18030's duplicate mapping to the same code point
	{23750, 0xFA0C},
	{23812, 0xE843},
}

// GBKDecode looks up a GBK/gb18030 two-byte pointer.
func GBKDecode(pointer int) (r rune, ok bool) {
	return decodeSparse(gbk, pointer)
}

// GBKEncodePointer is GBKDecode's reverse lookup. Ties (such as U+3000,
// reachable through two pointers above) resolve to the lowest pointer,
// matching the "first match in table order" rule a generated reverse
// index also applies.
func GBKEncodePointer(r rune) (pointer int, ok bool) {
	return encodeSparse(gbk, r)
}

// gb18030Ranges holds the four-byte gb18030 extension's range-index to
// code-point entries this module's tests exercise. The real WHATWG table
// is a short list of contiguous (index, code point, count) ranges covering
// all of Unicode outside the two-byte GBK plane; what's reproduced here
// are the individual worked examples, not the range list itself -- see
// the package doc.
var gb18030Ranges = []pointerEntry{
	{0, 0x0080},
	{7457, 0xE7C7},
	{9160, 0x2603},
	{251633, 0x1F4A9},
	{322560, 0x309B8}, // 0x9A 0x36 0x81 0x30: third attempt after two malformed leads
	{1237575, 0x10FFFF},
}

// GB18030RangeDecode looks up a four-byte gb18030 range index.
func GB18030RangeDecode(index int) (r rune, ok bool) {
	return decodeSparse(gb18030Ranges, index)
}

// GB18030RangeEncode is GB18030RangeDecode's reverse lookup.
func GB18030RangeEncode(r rune) (index int, ok bool) {
	return encodeSparse(gb18030Ranges, r)
}
