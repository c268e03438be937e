// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	webenc "github.com/webenc-go/encoding"
)

func TestConvertWindows1252ToUTF8(t *testing.T) {
	var out bytes.Buffer
	in := bytes.NewReader([]byte{0x41, 0xE9}) // "Aé" in windows-1252
	if err := convert(in, &out, webenc.Windows1252, webenc.UTF8); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got, want := out.String(), "Aé"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertUTF8ToShiftJIS(t *testing.T) {
	var out bytes.Buffer
	in := bytes.NewReader([]byte("A"))
	if err := convert(in, &out, webenc.UTF8, webenc.ShiftJIS); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got, want := out.Bytes(), []byte("A"); !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
