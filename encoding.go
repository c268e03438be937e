// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encoding implements the WHATWG Encoding Standard: streaming
// conversion between ~40 legacy web encodings and Unicode (exposed as
// UTF-8 or UTF-16), modeled on Mozilla's encoding_rs.
package encoding

import (
	"github.com/webenc-go/encoding/internal/coreresult"
	"github.com/webenc-go/encoding/internal/identifier"
	"github.com/webenc-go/encoding/internal/tables"
	"github.com/webenc-go/encoding/internal/variant/big5"
	"github.com/webenc-go/encoding/internal/variant/eucjp"
	"github.com/webenc-go/encoding/internal/variant/euckr"
	"github.com/webenc-go/encoding/internal/variant/gbk"
	"github.com/webenc-go/encoding/internal/variant/iso2022jp"
	"github.com/webenc-go/encoding/internal/variant/replacement"
	"github.com/webenc-go/encoding/internal/variant/shiftjis"
	"github.com/webenc-go/encoding/internal/variant/singlebyte"
	"github.com/webenc-go/encoding/internal/variant/userdefined"
	"github.com/webenc-go/encoding/internal/variant/utf16"
	"github.com/webenc-go/encoding/internal/variant/utf8"
)

// Encoding is an immutable singleton naming one of the WHATWG-defined
// encodings: a canonical name, an IANA MIBenum-style identifier, and a pair of factories for
// the variant decoder and encoder state machines that do the actual work.
// There are exactly 40 values of this type, all created by this package;
// unlike golang.org/x/text/encoding's Encoding interface, this one is a
// concrete struct, since every WHATWG encoding shares the same shape
// (name + decoder factory + encoder factory) and spec.md's registry is
// explicitly immutable (Non-goal: "a mutable registry").
type Encoding struct {
	name       string
	mib        identifier.MIB
	newDecoder func() coreresult.VariantDecoder
	newEncoder func() coreresult.VariantEncoder
}

// Name returns the encoding's canonical WHATWG name, e.g. "Shift_JIS".
func (e *Encoding) Name() string { return e.name }

// MIB returns the encoding's IANA MIBenum-style identifier.
func (e *Encoding) MIB() identifier.MIB { return e.mib }

// IsSingleByte reports whether every code point this encoding can decode
// comes from a single input byte (true for the charmap family, false for
// every multi-byte and Unicode transformation format).
func (e *Encoding) IsSingleByte() bool {
	switch e {
	case IBM866, ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5, ISO8859_6,
		ISO8859_7, ISO8859_8, ISO8859_8I, ISO8859_10, ISO8859_13,
		ISO8859_14, ISO8859_15, ISO8859_16, KOI8R, KOI8U, Macintosh,
		Windows874, Windows1250, Windows1251, Windows1252, Windows1253,
		Windows1254, Windows1255, Windows1256, Windows1257, Windows1258,
		XMacCyrillic, XUserDefined:
		return true
	}
	return false
}

func single(table *singlebyte.Table) (func() coreresult.VariantDecoder, func() coreresult.VariantEncoder) {
	return func() coreresult.VariantDecoder { return singlebyte.NewDecoder(table) },
		func() coreresult.VariantEncoder { return singlebyte.NewEncoder(table) }
}

func newSingleByte(name string, mib identifier.MIB, table *singlebyte.Table) *Encoding {
	dec, enc := single(table)
	return &Encoding{name: name, mib: mib, newDecoder: dec, newEncoder: enc}
}

var (
	Big5 = &Encoding{
		name: "Big5", mib: identifier.Big5,
		newDecoder: func() coreresult.VariantDecoder { return big5.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return big5.NewEncoder() },
	}
	EUCJP = &Encoding{
		name: "EUC-JP", mib: identifier.EUCJP,
		newDecoder: func() coreresult.VariantDecoder { return eucjp.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return eucjp.NewEncoder() },
	}
	EUCKR = &Encoding{
		name: "EUC-KR", mib: identifier.EUCKR,
		newDecoder: func() coreresult.VariantDecoder { return euckr.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return euckr.NewEncoder() },
	}
	GBK = &Encoding{
		name: "GBK", mib: identifier.GBK,
		newDecoder: func() coreresult.VariantDecoder { return gbk.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return gbk.NewGBKEncoder() },
	}
	GB18030 = &Encoding{
		name: "gb18030", mib: identifier.GB18030,
		newDecoder: func() coreresult.VariantDecoder { return gbk.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return gbk.NewGB18030Encoder() },
	}
	ISO2022JP = &Encoding{
		name: "ISO-2022-JP", mib: identifier.ISO2022JP,
		newDecoder: func() coreresult.VariantDecoder { return iso2022jp.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return iso2022jp.NewEncoder() },
	}
	ShiftJIS = &Encoding{
		name: "Shift_JIS", mib: identifier.ShiftJIS,
		newDecoder: func() coreresult.VariantDecoder { return shiftjis.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return shiftjis.NewEncoder() },
	}
	UTF8 = &Encoding{
		name: "UTF-8", mib: identifier.UTF8,
		newDecoder: func() coreresult.VariantDecoder { return utf8.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return utf8.NewEncoder() },
	}
	UTF16LE = &Encoding{
		name: "UTF-16LE", mib: identifier.UTF16LE,
		newDecoder: func() coreresult.VariantDecoder { return utf16.NewLEDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return utf16.NewLEEncoder() },
	}
	UTF16BE = &Encoding{
		name: "UTF-16BE", mib: identifier.UTF16BE,
		newDecoder: func() coreresult.VariantDecoder { return utf16.NewBEDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return utf16.NewBEEncoder() },
	}
	Replacement = &Encoding{
		name: "replacement", mib: identifier.Replacement,
		newDecoder: func() coreresult.VariantDecoder { return replacement.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return replacement.NewEncoder() },
	}
	XUserDefined = &Encoding{
		name: "x-user-defined", mib: identifier.XUserDefined,
		newDecoder: func() coreresult.VariantDecoder { return userdefined.NewDecoder() },
		newEncoder: func() coreresult.VariantEncoder { return userdefined.NewEncoder() },
	}

	IBM866       = newSingleByte("IBM866", identifier.IBM866, &tables.IBM866)
	ISO8859_2    = newSingleByte("ISO-8859-2", identifier.ISO8859_2, &tables.ISO88592)
	ISO8859_3    = newSingleByte("ISO-8859-3", identifier.ISO8859_3, &tables.ISO88593)
	ISO8859_4    = newSingleByte("ISO-8859-4", identifier.ISO8859_4, &tables.ISO88594)
	ISO8859_5    = newSingleByte("ISO-8859-5", identifier.ISO8859_5, &tables.ISO88595)
	ISO8859_6    = newSingleByte("ISO-8859-6", identifier.ISO8859_6, &tables.ISO88596)
	ISO8859_7    = newSingleByte("ISO-8859-7", identifier.ISO8859_7, &tables.ISO88597)
	ISO8859_8    = newSingleByte("ISO-8859-8", identifier.ISO8859_8, &tables.ISO88598)
	ISO8859_8I   = newSingleByte("ISO-8859-8-I", identifier.ISO8859_8I, &tables.ISO88598)
	ISO8859_10   = newSingleByte("ISO-8859-10", identifier.ISO8859_10, &tables.ISO885910)
	ISO8859_13   = newSingleByte("ISO-8859-13", identifier.ISO8859_13, &tables.ISO885913)
	ISO8859_14   = newSingleByte("ISO-8859-14", identifier.ISO8859_14, &tables.ISO885914)
	ISO8859_15   = newSingleByte("ISO-8859-15", identifier.ISO8859_15, &tables.ISO885915)
	ISO8859_16   = newSingleByte("ISO-8859-16", identifier.ISO8859_16, &tables.ISO885916)
	KOI8R        = newSingleByte("KOI8-R", identifier.KOI8R, &tables.KOI8R)
	KOI8U        = newSingleByte("KOI8-U", identifier.KOI8U, &tables.KOI8U)
	Macintosh    = newSingleByte("macintosh", identifier.Macintosh, &tables.Macintosh)
	Windows874   = newSingleByte("windows-874", identifier.Windows874, &tables.Windows874)
	Windows1250  = newSingleByte("windows-1250", identifier.Windows1250, &tables.Windows1250)
	Windows1251  = newSingleByte("windows-1251", identifier.Windows1251, &tables.Windows1251)
	Windows1252  = newSingleByte("windows-1252", identifier.Windows1252, &tables.Windows1252)
	Windows1253  = newSingleByte("windows-1253", identifier.Windows1253, &tables.Windows1253)
	Windows1254  = newSingleByte("windows-1254", identifier.Windows1254, &tables.Windows1254)
	Windows1255  = newSingleByte("windows-1255", identifier.Windows1255, &tables.Windows1255HighTable)
	Windows1256  = newSingleByte("windows-1256", identifier.Windows1256, &tables.Windows1256)
	Windows1257  = newSingleByte("windows-1257", identifier.Windows1257, &tables.Windows1257)
	Windows1258  = newSingleByte("windows-1258", identifier.Windows1258, &tables.Windows1258)
	XMacCyrillic = newSingleByte("x-mac-cyrillic", identifier.XMacCyrillic, &tables.XMacCyrillic)
)

// NewDecoder returns a streaming Decoder targeting this encoding with BOM
// sniffing enabled, matching the WHATWG standard's default decode entry
// point.
func (e *Encoding) NewDecoder() *Decoder { return newDecoder(e, bomSniff) }

// NewDecoderWithBOMRemoval returns a Decoder that strips this encoding's
// own BOM if present but does not sniff for any other encoding's BOM.
func (e *Encoding) NewDecoderWithBOMRemoval() *Decoder { return newDecoder(e, bomRemove) }

// NewDecoderWithoutBOMHandling returns a Decoder that never inspects the
// input for a BOM.
func (e *Encoding) NewDecoderWithoutBOMHandling() *Decoder { return newDecoder(e, bomOff) }

// NewEncoder returns a streaming Encoder targeting this encoding.
func (e *Encoding) NewEncoder() *Encoder { return newEncoder(e) }

// ForBOM returns UTF-8, UTF-16LE or UTF-16BE if b begins with the
// corresponding byte-order mark, else nil.
func ForBOM(b []byte) (enc *Encoding, bomLength int) {
	switch {
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return UTF8, 3
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return UTF16BE, 2
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return UTF16LE, 2
	}
	return nil, 0
}
