// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/webenc-go/encoding/internal/coreresult"

// CoderResult, DecoderResult and EncoderResult are defined in
// internal/coreresult so that the variant codec packages can implement
// VariantDecoder/VariantEncoder without importing this package; see the
// coreresult package doc for why.
type (
	CoderResult       = coreresult.CoderResult
	DecoderResultKind = coreresult.DecoderResultKind
	DecoderResult     = coreresult.DecoderResult
	EncoderResultKind = coreresult.EncoderResultKind
	EncoderResult     = coreresult.EncoderResult
)

const (
	InputEmpty = coreresult.InputEmpty
	OutputFull = coreresult.OutputFull

	DecoderInputEmpty = coreresult.DecoderInputEmpty
	DecoderOutputFull = coreresult.DecoderOutputFull
	DecoderMalformed  = coreresult.DecoderMalformed

	EncoderInputEmpty = coreresult.EncoderInputEmpty
	EncoderOutputFull = coreresult.EncoderOutputFull
	EncoderUnmappable = coreresult.EncoderUnmappable
)

var (
	DecoderInputEmptyResult = coreresult.DecoderInputEmptyResult
	DecoderOutputFullResult = coreresult.DecoderOutputFullResult
	EncoderInputEmptyResult = coreresult.EncoderInputEmptyResult
	EncoderOutputFullResult = coreresult.EncoderOutputFullResult
)

// Malformed builds a DecoderResult reporting a malformed byte sequence of
// bad bytes followed by good bytes already known not to be part of it.
func Malformed(bad, good byte) DecoderResult { return coreresult.Malformed(bad, good) }

// Unmappable builds an EncoderResult reporting that c has no
// representation in the target encoding.
func Unmappable(c rune) EncoderResult { return coreresult.Unmappable(c) }
