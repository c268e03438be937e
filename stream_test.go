// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"bytes"
	"io"
	"testing"
)

func TestNewReaderDecodesToUTF8(t *testing.T) {
	r := Windows1252.NewReader(bytes.NewReader([]byte{0x41, 0xE9})) // "Aé" in windows-1252
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "Aé" {
		t.Fatalf("got %q, want %q", got, "Aé")
	}
}

func TestNewWriterEncodesFromUTF8(t *testing.T) {
	var buf bytes.Buffer
	w := Windows1252.NewWriter(&buf)
	if _, err := io.WriteString(w, "Aé"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if closer, ok := w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	if got, want := buf.Bytes(), []byte{0x41, 0xE9}; !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewReaderReplacesMalformedInput(t *testing.T) {
	// Lone continuation byte is malformed UTF-8.
	r := UTF8.NewReader(bytes.NewReader([]byte{0x41, 0x80, 0x42}))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "A�B" {
		t.Fatalf("got %q, want %q", got, "A�B")
	}
}
