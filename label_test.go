// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "testing"

func TestForLabelKnownAliases(t *testing.T) {
	cases := map[string]*Encoding{
		"utf-8":          UTF8,
		"UTF8":           UTF8,
		"  utf8 \n":      UTF8,
		"latin1":         Windows1252,
		"iso-8859-1":     Windows1252,
		"sjis":           ShiftJIS,
		"shift_jis":      ShiftJIS,
		"gb2312":         GBK,
		"euc-kr":         EUCKR,
		"big5-hkscs":     Big5,
		"x-user-defined": XUserDefined,
		"csiso2022jp":    ISO2022JP,
		"csiso2022kr":    Replacement,
	}
	for label, want := range cases {
		if got := ForLabel(label); got != want {
			t.Errorf("ForLabel(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestForLabelUnknown(t *testing.T) {
	if got := ForLabel("not-a-real-encoding"); got != nil {
		t.Fatalf("ForLabel(unknown) = %v, want nil", got)
	}
}

func TestForNameExact(t *testing.T) {
	if got := ForName("Shift_JIS"); got != ShiftJIS {
		t.Fatalf("ForName(Shift_JIS) = %v, want ShiftJIS", got)
	}
	if got := ForName("shift_jis"); got != nil {
		t.Fatalf("ForName is case-sensitive, got %v for lowercase input", got)
	}
}

func TestAllReturnsFortyEncodings(t *testing.T) {
	if n := len(All()); n != 40 {
		t.Fatalf("len(All()) = %d, want 40", n)
	}
}
