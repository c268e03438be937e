// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "unicode/utf16"

// DecodeToUTF8 decodes all of b (a single complete, non-streaming input)
// from the encoding's charset into a freshly allocated UTF-8 string,
// applying BOM sniffing exactly as a streaming Decoder would. It never
// fails: malformed sequences are replaced with U+FFFD.
func (e *Encoding) DecodeToUTF8(b []byte) string {
	d := e.NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(len(b)))
	out := dst[:0]
	src := b
	for {
		result, nSrc, nDst := d.DecodeToUTF8(src, dst[len(out):], true)
		out = dst[:len(out)+nDst]
		src = src[nSrc:]
		switch result.Kind {
		case 0: // DecoderInputEmpty
			return string(out)
		case 2: // DecoderMalformed
			out = append(out, "�"...)
		default:
			return string(out)
		}
	}
}

// EncodeFromUTF8 encodes s (a single complete, non-streaming input) into
// a freshly allocated byte slice in the encoding's charset. Unmappable
// characters are replaced with a numeric character reference (e.g.
// "&#20013;"), matching the WHATWG encoder contract.
func (e *Encoding) EncodeFromUTF8(s string) []byte {
	enc := e.NewEncoder()
	dst := make([]byte, enc.MaxBufferLengthFromUTF8(len(s)))
	out := dst[:0]
	src := s
	for {
		result, nSrc, nDst := enc.EncodeFromUTF8(src, dst[len(out):], true)
		out = dst[:len(out)+nDst]
		src = src[nSrc:]
		switch result.Kind {
		case 0: // EncoderInputEmpty
			return out
		case 2: // EncoderUnmappable
			out = append(out, numericCharacterReference(result.Unmappable)...)
		default:
			return out
		}
	}
}

func numericCharacterReference(r rune) string {
	const decimalDigits = "0123456789"
	if r == 0 {
		return "&#0;"
	}
	var digits [12]byte
	i := len(digits)
	n := int(r)
	for n > 0 {
		i--
		digits[i] = decimalDigits[n%10]
		n /= 10
	}
	return "&#" + string(digits[i:]) + ";"
}

// DecodeUTF16 is a convenience wrapper returning the decoded text as
// UTF-16 code units rather than a UTF-8 string, for callers that need to
// interoperate with UTF-16-based APIs.
func (e *Encoding) DecodeUTF16(b []byte) []uint16 {
	d := e.NewDecoder()
	dst := make([]uint16, d.MaxUTF16BufferLength(len(b)))
	out := dst[:0]
	src := b
	for {
		result, nSrc, nDst := d.DecodeToUTF16(src, dst[len(out):], true)
		out = dst[:len(out)+nDst]
		src = src[nSrc:]
		switch result.Kind {
		case 0:
			return out
		case 2:
			out = utf16.AppendRune(out, '�')
		default:
			return out
		}
	}
}
