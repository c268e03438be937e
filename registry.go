// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

// encodingsSortedByName lists all 40 encodings in ASCII order of their
// canonical name, matching the WHATWG Encoding Standard's own registry
// table. ForName relies on this order to binary search.
var encodingsSortedByName = [40]*Encoding{
	Big5,
	EUCJP,
	EUCKR,
	GBK,
	IBM866,
	ISO2022JP,
	ISO8859_10,
	ISO8859_13,
	ISO8859_14,
	ISO8859_15,
	ISO8859_16,
	ISO8859_2,
	ISO8859_3,
	ISO8859_4,
	ISO8859_5,
	ISO8859_6,
	ISO8859_7,
	ISO8859_8,
	ISO8859_8I,
	KOI8R,
	KOI8U,
	ShiftJIS,
	UTF16BE,
	UTF16LE,
	UTF8,
	GB18030,
	Macintosh,
	Replacement,
	Windows1250,
	Windows1251,
	Windows1252,
	Windows1253,
	Windows1254,
	Windows1255,
	Windows1256,
	Windows1257,
	Windows1258,
	Windows874,
	XMacCyrillic,
	XUserDefined,
}

// All returns every encoding in the registry, sorted by canonical name.
func All() []*Encoding {
	out := make([]*Encoding, len(encodingsSortedByName))
	copy(out, encodingsSortedByName[:])
	return out
}

// ForName looks an encoding up by its exact canonical name (e.g.
// "Shift_JIS", case-sensitive). Most callers should use ForLabel instead,
// which normalizes and accepts any of the 218 WHATWG labels.
func ForName(name string) *Encoding {
	lo, hi := 0, len(encodingsSortedByName)
	for lo < hi {
		mid := (lo + hi) / 2
		c := encodingsSortedByName[mid]
		switch {
		case c.name == name:
			return c
		case c.name < name:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil
}
