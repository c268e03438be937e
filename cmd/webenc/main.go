// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command webenc converts text between UTF-8 and any of the WHATWG
// Encoding Standard's legacy encodings.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	webenc "github.com/webenc-go/encoding"
)

var (
	from = flag.String("from", "UTF-8", "source encoding label (e.g. Shift_JIS, windows-1252)")
	to   = flag.String("to", "UTF-8", "destination encoding label")
	list = flag.Bool("list", false, "list all known encodings and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("webenc: ")
	flag.Parse()

	if *list {
		for _, enc := range webenc.All() {
			fmt.Println(enc.Name())
		}
		return
	}

	src := webenc.ForLabel(*from)
	if src == nil {
		log.Fatalf("unknown source encoding %q", *from)
	}
	dst := webenc.ForLabel(*to)
	if dst == nil {
		log.Fatalf("unknown destination encoding %q", *to)
	}

	if err := convert(os.Stdin, os.Stdout, src, dst); err != nil {
		log.Fatal(err)
	}
}

// convert decodes r from src to UTF-8, then encodes that to dst, writing
// the result to w.
func convert(r io.Reader, w io.Writer, src, dst *webenc.Encoding) error {
	decoded := src.NewReader(r)
	encoder := dst.NewWriter(w)
	if _, err := io.Copy(encoder, decoded); err != nil {
		return err
	}
	if closer, ok := encoder.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
