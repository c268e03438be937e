// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coreresult holds the result types shared between the root
// package's public API and every per-encoding variant codec, plus the
// VariantDecoder/VariantEncoder interfaces the variant codecs implement.
//
// These live in their own leaf package, rather than in the root package
// directly, because the root package's registry needs to import the
// variant codec packages to construct them, and the variant codec
// packages need the result types to express their return values -- a
// cycle if both lived in the root package. The root package instead
// re-exports the types here under their original names with a type
// alias, the same way golang.org/x/text/encoding/identifier.go is
// aliased back into golang.org/x/text/encoding so that charmap and the
// other script packages can implement identifier.Interface without
// importing the encoding package themselves.
package coreresult

import "fmt"

// CoderResult is the result of a (potentially partial) decode or encode
// operation that performs automatic replacement of errors, so it only ever
// needs to report that the caller ran out of input or output space.
type CoderResult int

const (
	// InputEmpty means all of src was consumed. If this was returned from a
	// call with last set to true, the conversion is complete. Otherwise the
	// caller should call again with more input.
	InputEmpty CoderResult = iota
	// OutputFull means dst did not have enough room for the next unit of
	// output. The caller must provide more space and resume with the
	// unconsumed suffix of src.
	OutputFull
)

func (r CoderResult) String() string {
	switch r {
	case InputEmpty:
		return "InputEmpty"
	case OutputFull:
		return "OutputFull"
	default:
		return fmt.Sprintf("CoderResult(%d)", int(r))
	}
}

// DecoderResultKind distinguishes the three shapes a DecoderResult can take.
type DecoderResultKind int

const (
	// DecoderInputEmpty means all of src was consumed.
	DecoderInputEmpty DecoderResultKind = iota
	// DecoderOutputFull means dst ran out of room.
	DecoderOutputFull
	// DecoderMalformed means a malformed byte sequence was found; see
	// DecoderResult.Bad and DecoderResult.Good.
	DecoderMalformed
)

// DecoderResult is the result of a decode operation performed without
// automatic error replacement.
//
// When Kind is DecoderMalformed, Bad is the number of erroneous bytes
// (1..=4) and Good is the number of bytes consumed immediately after the
// erroneous sequence that are not themselves part of it (0..=3). Good is
// nonzero only when a multi-byte lookahead determined the erroneous
// sequence had already ended before the deciding byte was read.
type DecoderResult struct {
	Kind DecoderResultKind
	Bad  byte
	Good byte
}

// Malformed builds a DecoderResult reporting a malformed byte sequence.
func Malformed(bad, good byte) DecoderResult {
	if bad < 1 || bad > 4 {
		panic("coreresult: malformed bad byte count out of range")
	}
	if good > 3 {
		panic("coreresult: malformed good byte count out of range")
	}
	return DecoderResult{Kind: DecoderMalformed, Bad: bad, Good: good}
}

// DecoderInputEmptyResult and DecoderOutputFullResult are the two
// zero-payload DecoderResult values.
var (
	DecoderInputEmptyResult = DecoderResult{Kind: DecoderInputEmpty}
	DecoderOutputFullResult = DecoderResult{Kind: DecoderOutputFull}
)

func (r DecoderResult) String() string {
	switch r.Kind {
	case DecoderInputEmpty:
		return "InputEmpty"
	case DecoderOutputFull:
		return "OutputFull"
	case DecoderMalformed:
		return fmt.Sprintf("Malformed(%d, %d)", r.Bad, r.Good)
	default:
		return fmt.Sprintf("DecoderResult(%d)", int(r.Kind))
	}
}

// EncoderResultKind distinguishes the three shapes an EncoderResult can take.
type EncoderResultKind int

const (
	// EncoderInputEmpty means all of src was consumed.
	EncoderInputEmpty EncoderResultKind = iota
	// EncoderOutputFull means dst ran out of room.
	EncoderOutputFull
	// EncoderUnmappable means the source contained a character with no
	// representation in the target encoding; see EncoderResult.Unmappable.
	EncoderUnmappable
)

// EncoderResult is the result of an encode operation performed without
// automatic replacement of unmappable characters.
type EncoderResult struct {
	Kind       EncoderResultKind
	Unmappable rune
}

// Unmappable builds an EncoderResult reporting an unmappable character.
func Unmappable(c rune) EncoderResult {
	return EncoderResult{Kind: EncoderUnmappable, Unmappable: c}
}

var (
	EncoderInputEmptyResult = EncoderResult{Kind: EncoderInputEmpty}
	EncoderOutputFullResult = EncoderResult{Kind: EncoderOutputFull}
)

func (r EncoderResult) String() string {
	switch r.Kind {
	case EncoderInputEmpty:
		return "InputEmpty"
	case EncoderOutputFull:
		return "OutputFull"
	case EncoderUnmappable:
		return fmt.Sprintf("Unmappable(%U)", r.Unmappable)
	default:
		return fmt.Sprintf("EncoderResult(%d)", int(r.Kind))
	}
}

// VariantDecoder is implemented by each per-encoding decoder state
// machine (single-byte, Big5, EUC-JP, EUC-KR, GBK/gb18030, Shift_JIS,
// ISO-2022-JP, UTF-8, UTF-16, replacement, x-user-defined). The root
// Decoder type holds one of these and drives it with successive slices
// of input, mirroring how golang.org/x/text/encoding.Encoding.NewDecoder
// returns a transform.Transformer that a caller drives the same way.
type VariantDecoder interface {
	// Reset returns the decoder to its initial state, as if newly
	// constructed. Used when a Decoder is reused across conversions.
	Reset()

	// MaxUTF16BufferLength returns a worst-case upper bound on the
	// number of UTF-16 code units DecodeToUTF16 could write for
	// byteLength bytes of additional input, given the decoder's
	// current state.
	MaxUTF16BufferLength(byteLength int) int

	// MaxUTF8BufferLengthWithoutReplacement returns a worst-case upper
	// bound on the number of UTF-8 bytes DecodeToUTF8 could write for
	// byteLength bytes of additional input, given the decoder's
	// current state, assuming no malformed sequences are replaced.
	MaxUTF8BufferLengthWithoutReplacement(byteLength int) int

	// MaxUTF8BufferLength is like MaxUTF8BufferLengthWithoutReplacement
	// but accounts for every malformed sequence being replaced with
	// U+FFFD (three bytes in UTF-8), for callers that perform
	// replacement themselves above the variant layer.
	MaxUTF8BufferLength(byteLength int) int

	// DecodeToUTF16 decodes as much of src into dst as will fit,
	// stopping at the first malformed sequence so the caller can
	// decide how to handle it. last indicates src is the final chunk
	// of the stream. It returns the result, the number of bytes of
	// src consumed and the number of UTF-16 code units written.
	DecodeToUTF16(src []byte, dst []uint16, last bool) (DecoderResult, int, int)

	// DecodeToUTF8 is DecodeToUTF16's UTF-8 destination counterpart.
	DecodeToUTF8(src []byte, dst []byte, last bool) (DecoderResult, int, int)
}

// VariantEncoder is implemented by each per-encoding encoder state
// machine. The root Encoder type holds one of these.
type VariantEncoder interface {
	// Reset returns the encoder to its initial state.
	Reset()

	// MaxBufferLengthFromUTF16WithoutReplacement returns a worst-case
	// upper bound on the number of output bytes EncodeFromUTF16 could
	// write for u16Length additional UTF-16 code units of input,
	// assuming no unmappable characters are replaced.
	MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int

	// MaxBufferLengthFromUTF16 is like
	// MaxBufferLengthFromUTF16WithoutReplacement but accounts for
	// every unmappable character being replaced with a numeric
	// character reference (at most 10 bytes: "&#1114111;").
	MaxBufferLengthFromUTF16(u16Length int) int

	// MaxBufferLengthFromUTF8WithoutReplacement is
	// MaxBufferLengthFromUTF16WithoutReplacement's UTF-8 source
	// counterpart.
	MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int

	// MaxBufferLengthFromUTF8 is MaxBufferLengthFromUTF16's UTF-8
	// source counterpart.
	MaxBufferLengthFromUTF8(byteLength int) int

	// EncodeFromUTF16 encodes as much of src into dst as will fit,
	// stopping at the first unmappable character. last indicates src
	// is the final chunk of the stream. It returns the result, the
	// number of UTF-16 code units of src consumed and the number of
	// bytes written.
	EncodeFromUTF16(src []uint16, dst []byte, last bool) (EncoderResult, int, int)

	// EncodeFromUTF8 is EncodeFromUTF16's UTF-8 source counterpart.
	// src is a string rather than a []byte because the root Encoder
	// always encodes from a Go string, never a byte slice that might
	// not be valid UTF-8.
	EncodeFromUTF8(src string, dst []byte, last bool) (EncoderResult, int, int)
}
