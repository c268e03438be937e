// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/webenc-go/encoding/internal/coreresult"

// Encoder converts a stream of Unicode text into bytes in some encoding,
// delegating to the target encoding's VariantEncoder. Unlike Decoder, an
// Encoder never needs BOM bookkeeping: the Encoding Standard leaves BOM
// emission to the caller, not the encoder.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	encoding *Encoding
	variant  coreresult.VariantEncoder
}

func newEncoder(enc *Encoding) *Encoder {
	return &Encoder{encoding: enc, variant: enc.newEncoder()}
}

// Encoding returns the encoding this Encoder targets.
func (e *Encoder) Encoding() *Encoding { return e.encoding }

// EncodeFromUTF16 encodes as much of src into dst as will fit, stopping
// at the first unmappable character.
func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	return e.variant.EncodeFromUTF16(src, dst, last)
}

// EncodeFromUTF8 is EncodeFromUTF16's UTF-8 source counterpart.
func (e *Encoder) EncodeFromUTF8(src string, dst []byte, last bool) (coreresult.EncoderResult, int, int) {
	return e.variant.EncodeFromUTF8(src, dst, last)
}

// MaxBufferLengthFromUTF16WithoutReplacement delegates to the target
// encoding's VariantEncoder.
func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return e.variant.MaxBufferLengthFromUTF16WithoutReplacement(u16Length)
}

// MaxBufferLengthFromUTF16 delegates to the target encoding's
// VariantEncoder.
func (e *Encoder) MaxBufferLengthFromUTF16(u16Length int) int {
	return e.variant.MaxBufferLengthFromUTF16(u16Length)
}

// MaxBufferLengthFromUTF8WithoutReplacement delegates to the target
// encoding's VariantEncoder.
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return e.variant.MaxBufferLengthFromUTF8WithoutReplacement(byteLength)
}

// MaxBufferLengthFromUTF8 delegates to the target encoding's
// VariantEncoder.
func (e *Encoder) MaxBufferLengthFromUTF8(byteLength int) int {
	return e.variant.MaxBufferLengthFromUTF8(byteLength)
}

// Reset returns the Encoder to its initial state.
func (e *Encoder) Reset() { e.variant.Reset() }
