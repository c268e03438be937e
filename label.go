// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "strings"

// labelsSorted holds the 218 WHATWG encoding labels in ASCII order,
// exactly as enumerated by the Encoding Standard's "names and labels"
// table. encodingsInLabelSort[i] is the encoding labelsSorted[i] maps to.
// Both arrays are reproduced verbatim rather than as a representative
// subset: unlike the charmap lookup tables, this label table IS the
// specified behavior, not opaque external data.
var labelsSorted = [218]string{
	"866", "ansi_x3.4-1968", "arabic", "ascii", "asmo-708", "big5",
	"big5-hkscs", "chinese", "cn-big5", "cp1250", "cp1251", "cp1252",
	"cp1253", "cp1254", "cp1255", "cp1256", "cp1257", "cp1258", "cp819",
	"cp866", "csbig5", "cseuckr", "cseucpkdfmtjapanese", "csgb2312",
	"csibm866", "csiso2022jp", "csiso2022kr", "csiso58gb231280",
	"csiso88596e", "csiso88596i", "csiso88598e", "csiso88598i",
	"csisolatin1", "csisolatin2", "csisolatin3", "csisolatin4",
	"csisolatin5", "csisolatin6", "csisolatin9", "csisolatinarabic",
	"csisolatincyrillic", "csisolatingreek", "csisolatinhebrew",
	"cskoi8r", "csksc56011987", "csmacintosh", "csshiftjis", "cyrillic",
	"dos-874", "ecma-114", "ecma-118", "elot_928", "euc-jp", "euc-kr",
	"gb18030", "gb2312", "gb_2312", "gb_2312-80", "gbk", "greek",
	"greek8", "hebrew", "hz-gb-2312", "ibm819", "ibm866", "iso-2022-cn",
	"iso-2022-cn-ext", "iso-2022-jp", "iso-2022-kr", "iso-8859-1",
	"iso-8859-10", "iso-8859-11", "iso-8859-13", "iso-8859-14",
	"iso-8859-15", "iso-8859-16", "iso-8859-2", "iso-8859-3",
	"iso-8859-4", "iso-8859-5", "iso-8859-6", "iso-8859-6-e",
	"iso-8859-6-i", "iso-8859-7", "iso-8859-8", "iso-8859-8-e",
	"iso-8859-8-i", "iso-8859-9", "iso-ir-100", "iso-ir-101",
	"iso-ir-109", "iso-ir-110", "iso-ir-126", "iso-ir-127", "iso-ir-138",
	"iso-ir-144", "iso-ir-148", "iso-ir-149", "iso-ir-157", "iso-ir-58",
	"iso8859-1", "iso8859-10", "iso8859-11", "iso8859-13", "iso8859-14",
	"iso8859-15", "iso8859-2", "iso8859-3", "iso8859-4", "iso8859-5",
	"iso8859-6", "iso8859-7", "iso8859-8", "iso8859-9", "iso88591",
	"iso885910", "iso885911", "iso885913", "iso885914", "iso885915",
	"iso88592", "iso88593", "iso88594", "iso88595", "iso88596",
	"iso88597", "iso88598", "iso88599", "iso_8859-1", "iso_8859-15",
	"iso_8859-1:1987", "iso_8859-2", "iso_8859-2:1987", "iso_8859-3",
	"iso_8859-3:1988", "iso_8859-4", "iso_8859-4:1988", "iso_8859-5",
	"iso_8859-5:1988", "iso_8859-6", "iso_8859-6:1987", "iso_8859-7",
	"iso_8859-7:1987", "iso_8859-8", "iso_8859-8:1988", "iso_8859-9",
	"iso_8859-9:1989", "koi", "koi8", "koi8-r", "koi8-ru", "koi8-u",
	"koi8_r", "korean", "ks_c_5601-1987", "ks_c_5601-1989", "ksc5601",
	"ksc_5601", "l1", "l2", "l3", "l4", "l5", "l6", "l9", "latin1",
	"latin2", "latin3", "latin4", "latin5", "latin6", "logical", "mac",
	"macintosh", "ms932", "ms_kanji", "shift-jis", "shift_jis", "sjis",
	"sun_eu_greek", "tis-620", "unicode-1-1-utf-8", "us-ascii", "utf-16",
	"utf-16be", "utf-16le", "utf-8", "utf8", "visual", "windows-1250",
	"windows-1251", "windows-1252", "windows-1253", "windows-1254",
	"windows-1255", "windows-1256", "windows-1257", "windows-1258",
	"windows-31j", "windows-874", "windows-949", "x-cp1250", "x-cp1251",
	"x-cp1252", "x-cp1253", "x-cp1254", "x-cp1255", "x-cp1256",
	"x-cp1257", "x-cp1258", "x-euc-jp", "x-gbk", "x-mac-cyrillic",
	"x-mac-roman", "x-mac-ukrainian", "x-sjis", "x-user-defined",
	"x-x-big5",
}

var encodingsInLabelSort = [218]*Encoding{
	IBM866, Windows1252, ISO8859_6, Windows1252, ISO8859_6, Big5, Big5,
	GBK, Big5, Windows1250, Windows1251, Windows1252, Windows1253,
	Windows1254, Windows1255, Windows1256, Windows1257, Windows1258,
	Windows1252, IBM866, Big5, EUCKR, EUCJP, GBK, IBM866, ISO2022JP,
	Replacement, GBK, ISO8859_6, ISO8859_6, ISO8859_8, ISO8859_8I,
	Windows1252, ISO8859_2, ISO8859_3, ISO8859_4, Windows1254,
	ISO8859_10, ISO8859_15, ISO8859_6, ISO8859_5, ISO8859_7, ISO8859_8,
	KOI8R, EUCKR, Macintosh, ShiftJIS, ISO8859_5, Windows874, ISO8859_6,
	ISO8859_7, ISO8859_7, EUCJP, EUCKR, GB18030, GBK, GBK, GBK, GBK,
	ISO8859_7, ISO8859_7, ISO8859_8, Replacement, Windows1252, IBM866,
	Replacement, Replacement, ISO2022JP, Replacement, Windows1252,
	ISO8859_10, Windows874, ISO8859_13, ISO8859_14, ISO8859_15,
	ISO8859_16, ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5, ISO8859_6,
	ISO8859_6, ISO8859_6, ISO8859_7, ISO8859_8, ISO8859_8, ISO8859_8I,
	Windows1254, Windows1252, ISO8859_2, ISO8859_3, ISO8859_4,
	ISO8859_7, ISO8859_6, ISO8859_8, ISO8859_5, Windows1254, EUCKR,
	ISO8859_10, GBK, Windows1252, ISO8859_10, Windows874, ISO8859_13,
	ISO8859_14, ISO8859_15, ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5,
	ISO8859_6, ISO8859_7, ISO8859_8, Windows1254, Windows1252,
	ISO8859_10, Windows874, ISO8859_13, ISO8859_14, ISO8859_15,
	ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5, ISO8859_6, ISO8859_7,
	ISO8859_8, Windows1254, Windows1252, ISO8859_15, Windows1252,
	ISO8859_2, ISO8859_2, ISO8859_3, ISO8859_3, ISO8859_4, ISO8859_4,
	ISO8859_5, ISO8859_5, ISO8859_6, ISO8859_6, ISO8859_7, ISO8859_7,
	ISO8859_8, ISO8859_8, Windows1254, Windows1254, KOI8R, KOI8R, KOI8R,
	KOI8U, KOI8U, KOI8R, EUCKR, EUCKR, EUCKR, EUCKR, EUCKR, Windows1252,
	ISO8859_2, ISO8859_3, ISO8859_4, Windows1254, ISO8859_10,
	ISO8859_15, Windows1252, ISO8859_2, ISO8859_3, ISO8859_4,
	Windows1254, ISO8859_10, ISO8859_8I, Macintosh, Macintosh, ShiftJIS,
	ShiftJIS, ShiftJIS, ShiftJIS, ShiftJIS, ISO8859_7, Windows874, UTF8,
	Windows1252, UTF16LE, UTF16BE, UTF16LE, UTF8, UTF8, ISO8859_8,
	Windows1250, Windows1251, Windows1252, Windows1253, Windows1254,
	Windows1255, Windows1256, Windows1257, Windows1258, ShiftJIS,
	Windows874, EUCKR, Windows1250, Windows1251, Windows1252,
	Windows1253, Windows1254, Windows1255, Windows1256, Windows1257,
	Windows1258, EUCJP, GBK, XMacCyrillic, Macintosh, XMacCyrillic,
	ShiftJIS, XUserDefined, Big5,
}

// ForLabel implements the WHATWG "get an encoding" algorithm: it trims
// ASCII whitespace from both ends of label, lowercases it, and binary
// searches labelsSorted for an exact match. It returns nil if label
// names no known encoding.
func ForLabel(label string) *Encoding {
	label = strings.TrimFunc(label, isASCIIWhitespace)
	label = strings.ToLower(label)

	lo, hi := 0, len(labelsSorted)
	for lo < hi {
		mid := (lo + hi) / 2
		c := labelsSorted[mid]
		switch {
		case c == label:
			return encodingsInLabelSort[mid]
		case c < label:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
