// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/webenc-go/encoding/internal/coreresult"

// bomMode controls how a Decoder's first bytes are inspected for a BOM.
type bomMode int

const (
	// bomSniff inspects the first bytes for any of the three Unicode
	// BOMs (UTF-8, UTF-16LE, UTF-16BE) and retargets the decoder to the
	// BOM's encoding if one is found, discarding the BOM itself. This
	// is the WHATWG standard's default decode entry point.
	bomSniff bomMode = iota
	// bomRemove only strips the BOM belonging to the decoder's own
	// encoding (no BOM, no retargeting): UTF-8 strips a leading EF BB
	// BF, UTF-16LE/BE strip their own two-byte BOM, everything else
	// never inspects its input for a BOM at all.
	bomRemove
	// bomOff never inspects the input for a BOM; every byte reaches
	// the variant decoder unchanged.
	bomOff
)

// Decoder converts a stream of bytes in some encoding into a stream of
// Unicode text, handling byte-order-mark sniffing/removal on the first
// bytes of input and delegating everything after that to the target
// encoding's VariantDecoder. It corresponds to encoding_rs's Decoder.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	encoding *Encoding
	variant  coreresult.VariantDecoder
	mode     bomMode
	sniffing bool
	pending  []byte // BOM candidate bytes buffered until resolved
}

func newDecoder(enc *Encoding, mode bomMode) *Decoder {
	d := &Decoder{encoding: enc, mode: mode}
	d.variant = enc.newDecoder()
	d.sniffing = mode != bomOff && (mode == bomSniff || enc == UTF8 || enc == UTF16BE || enc == UTF16LE)
	return d
}

// Encoding returns the encoding this Decoder currently targets. In
// bomSniff mode this can change from the encoding NewDecoder was called
// on, the first time a non-matching BOM is found.
func (d *Decoder) Encoding() *Encoding { return d.encoding }

// bomCandidateLength is the number of leading bytes that must be
// buffered before a BOM decision can be made, given the current mode and
// target encoding.
func (d *Decoder) bomCandidateLength() int {
	if d.mode == bomSniff {
		return 3
	}
	if d.encoding == UTF8 {
		return 3
	}
	return 2
}

// resolveBOM is called once bomCandidateLength bytes have been buffered
// (or fewer, if the stream ended first). It returns the number of
// buffered bytes that were consumed as a BOM (0 if none matched).
func (d *Decoder) resolveBOM() (consumed int) {
	if d.mode == bomSniff {
		if enc, n := ForBOM(d.pending); enc != nil {
			d.encoding = enc
			d.variant = enc.newDecoder()
			return n
		}
		return 0
	}
	switch d.encoding {
	case UTF8:
		if len(d.pending) >= 3 && d.pending[0] == 0xEF && d.pending[1] == 0xBB && d.pending[2] == 0xBF {
			return 3
		}
	case UTF16BE:
		if len(d.pending) >= 2 && d.pending[0] == 0xFE && d.pending[1] == 0xFF {
			return 2
		}
	case UTF16LE:
		if len(d.pending) >= 2 && d.pending[0] == 0xFF && d.pending[1] == 0xFE {
			return 2
		}
	}
	return 0
}

// drainBOM folds any not-yet-resolved BOM prefix into src. It returns
// the bytes that should reach the variant decoder this call, along with
// srcStart, the offset within that slice at which bytes belonging to
// the current call's src (as opposed to previously buffered bytes)
// begin, and bomFromSrc, how many bytes of the current call's src were
// consumed as part of a just-resolved BOM.
func (d *Decoder) drainBOM(src []byte, last bool) (effective []byte, srcStart, bomFromSrc int) {
	if !d.sniffing {
		return src, 0, 0
	}
	priorLen := len(d.pending)
	need := d.bomCandidateLength()
	d.pending = append(d.pending, src...)
	if len(d.pending) < need && !last {
		// Not enough buffered yet to decide; nothing is released to the
		// variant decoder this call.
		return nil, 0, 0
	}
	d.sniffing = false
	consumed := d.resolveBOM()
	leftover := d.pending[consumed:]
	d.pending = nil

	if priorLen >= consumed {
		srcStart = priorLen - consumed
		bomFromSrc = 0
	} else {
		srcStart = 0
		bomFromSrc = consumed - priorLen
	}
	return leftover, srcStart, bomFromSrc
}

// DecodeToUTF16 decodes as much of src into dst as will fit, applying
// BOM sniffing/removal to the start of the stream. last indicates src is
// the final chunk.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (coreresult.DecoderResult, int, int) {
	effective, srcStart, bomFromSrc := d.drainBOM(src, last)
	if effective == nil && d.sniffing {
		// Still buffering BOM candidate bytes.
		return coreresult.DecoderInputEmptyResult, len(src), 0
	}
	result, nSrcEffective, nDst := d.variant.DecodeToUTF16(effective, dst, last)
	nSrc := bomFromSrc + clampNonNegative(nSrcEffective-srcStart)
	if nSrc > len(src) {
		nSrc = len(src)
	}
	return result, nSrc, nDst
}

// DecodeToUTF8 is DecodeToUTF16's UTF-8 destination counterpart.
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (coreresult.DecoderResult, int, int) {
	effective, srcStart, bomFromSrc := d.drainBOM(src, last)
	if effective == nil && d.sniffing {
		return coreresult.DecoderInputEmptyResult, len(src), 0
	}
	result, nSrcEffective, nDst := d.variant.DecodeToUTF8(effective, dst, last)
	nSrc := bomFromSrc + clampNonNegative(nSrcEffective-srcStart)
	if nSrc > len(src) {
		nSrc = len(src)
	}
	return result, nSrc, nDst
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// MaxUTF16BufferLength delegates to the current target encoding's
// VariantDecoder; see VariantDecoder.MaxUTF16BufferLength.
func (d *Decoder) MaxUTF16BufferLength(byteLength int) int {
	return d.variant.MaxUTF16BufferLength(byteLength)
}

// MaxUTF8BufferLengthWithoutReplacement delegates to the current target
// encoding's VariantDecoder.
func (d *Decoder) MaxUTF8BufferLengthWithoutReplacement(byteLength int) int {
	return d.variant.MaxUTF8BufferLengthWithoutReplacement(byteLength)
}

// MaxUTF8BufferLength delegates to the current target encoding's
// VariantDecoder.
func (d *Decoder) MaxUTF8BufferLength(byteLength int) int {
	return d.variant.MaxUTF8BufferLength(byteLength)
}

// Reset returns the Decoder to its initial state, including re-arming
// BOM sniffing/removal.
func (d *Decoder) Reset() {
	d.variant.Reset()
	d.pending = nil
	d.sniffing = d.mode != bomOff && (d.mode == bomSniff || d.encoding == UTF8 || d.encoding == UTF16BE || d.encoding == UTF16LE)
}
