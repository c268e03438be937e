// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"io"

	"github.com/webenc-go/encoding/transform"
)

// NewReader wraps r to transform its bytes from e's encoding to UTF-8.
func (e *Encoding) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, e.NewDecoder().Transformer())
}

// NewWriter wraps w so that bytes written to it are first transformed
// from UTF-8 into e's encoding before being written to w.
func (e *Encoding) NewWriter(w io.Writer) io.Writer {
	return transform.NewWriter(w, e.NewEncoder().Transformer())
}

// decoderTransformer adapts a Decoder to transform.Transformer, decoding
// from the encoding's charset to UTF-8, so it can be driven by
// transform.NewReader/NewWriter the same way golang.org/x/text/encoding's
// Decoders are.
type decoderTransformer struct {
	d *Decoder
}

// Transformer returns a transform.Transformer that decodes bytes in d's
// encoding to UTF-8, for use with transform.NewReader/NewWriter.
func (d *Decoder) Transformer() transform.Transformer {
	return &decoderTransformer{d: d}
}

func (t *decoderTransformer) Reset() { t.d.Reset() }

const replacementUTF8 = "�"

func (t *decoderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		result, n, m := t.d.DecodeToUTF8(src[nSrc:], dst[nDst:], atEOF)
		nSrc += n
		nDst += m
		switch result.Kind {
		case 0: // DecoderInputEmpty
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, nil
		case 1: // DecoderOutputFull
			return nDst, nSrc, transform.ErrShortDst
		default: // DecoderMalformed: substitute U+FFFD and keep going.
			if len(dst)-nDst < len(replacementUTF8) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacementUTF8)
		}
	}
}

// encoderTransformer adapts an Encoder to transform.Transformer, encoding
// from UTF-8 to the target encoding's charset.
type encoderTransformer struct {
	e *Encoder
}

// Transformer returns a transform.Transformer that encodes UTF-8 bytes to
// e's encoding, for use with transform.NewReader/NewWriter.
func (e *Encoder) Transformer() transform.Transformer {
	return &encoderTransformer{e: e}
}

func (t *encoderTransformer) Reset() { t.e.Reset() }

func (t *encoderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		result, n, m := t.e.EncodeFromUTF8(string(src[nSrc:]), dst[nDst:], atEOF)
		nSrc += n
		nDst += m
		switch result.Kind {
		case 0: // EncoderInputEmpty
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, nil
		case 1: // EncoderOutputFull
			return nDst, nSrc, transform.ErrShortDst
		default: // EncoderUnmappable: substitute a numeric character reference.
			ref := numericCharacterReference(result.Unmappable)
			if len(dst)-nDst < len(ref) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], ref)
		}
	}
}
