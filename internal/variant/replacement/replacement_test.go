// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replacement

import "testing"

func TestDecodeAlwaysMalformed(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, nSrc, nDst := d.DecodeToUTF16([]byte("abc"), dst, true)
	if result.Kind != 2 || nSrc != 3 || nDst != 0 {
		t.Fatalf("got %v %d %d, want Malformed consuming all input", result, nSrc, nDst)
	}
}

func TestDecodeEmptyInputNeverErrors(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	result, _, _ := d.DecodeToUTF16(nil, dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v, want InputEmpty", result)
	}
}

func TestDecodeOnlyErrorsOnce(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, 4)
	d.DecodeToUTF16([]byte("a"), dst, false)
	result, _, _ := d.DecodeToUTF16([]byte("b"), dst, true)
	if result.Kind != 0 {
		t.Fatalf("result = %v, want InputEmpty on second call", result)
	}
}
