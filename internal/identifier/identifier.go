// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package identifier defines the MIB enum used to identify each encoding
// without depending on the encoding package itself (the same leaf-package
// shape golang.org/x/text/encoding/internal/identifier uses, which
// encoding/identifier.go in turn aliases for external consumers).
package identifier

// MIB is a coarse identifier for an encoding, analogous to IANA's MIBenum
// registry: a stable small integer that names an encoding without
// depending on the encoding package.
type MIB int

// Interface is implemented by any value that knows its own MIB and IANA
// reference name.
type Interface interface {
	ID() (mib MIB, other string)
	NAME() string
}

const (
	_ MIB = iota
	Big5
	EUCJP
	EUCKR
	GBK
	GB18030
	IBM866
	ISO2022JP
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_8I
	ISO8859_10
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	KOI8R
	KOI8U
	Macintosh
	Replacement
	ShiftJIS
	UTF8
	UTF16BE
	UTF16LE
	Windows874
	Windows1250
	Windows1251
	Windows1252
	Windows1253
	Windows1254
	Windows1255
	Windows1256
	Windows1257
	Windows1258
	XMacCyrillic
	XUserDefined
)
