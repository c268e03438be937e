// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8internal holds the lead-byte classification used by the
// byte-at-a-time state machine in the utf8 variant codec (its only bulk
// path is the ASCII copy, which does not consult this table). The classification is
// table-driven (a 256-entry array indexed by the lead byte) even though it
// is computed at init time rather than emitted by a generator, because the
// function is exactly the one spec.md describes: nine classes distinguished
// only by the lead byte's value.
package utf8internal

// LeadClass is one of the ten lead-byte classes (nine for bytes that can
// start a character, plus ClassInvalid) used to decide how many
// trailing bytes follow and what range the first one must fall in.
type LeadClass byte

const (
	ClassASCIINonPunct LeadClass = iota
	ClassASCIIPunct
	ClassTwoByte
	ClassThreeByteNormal
	ClassThreeByteSpecialLower // lead 0xE0: first trail forbids overlong encodings
	ClassThreeByteSpecialUpper // lead 0xED: first trail forbids surrogates
	ClassFourByteNormal
	ClassFourByteSpecialLower // lead 0xF0: first trail forbids overlong encodings
	ClassFourByteSpecialUpper // lead 0xF4: first trail forbids code points > U+10FFFF
	ClassInvalid
)

var leadClass [256]LeadClass

func init() {
	for b := 0; b < 0x80; b++ {
		if isASCIIPunctuation(byte(b)) {
			leadClass[b] = ClassASCIIPunct
		} else {
			leadClass[b] = ClassASCIINonPunct
		}
	}
	for b := 0x80; b <= 0xC1; b++ {
		leadClass[b] = ClassInvalid
	}
	for b := 0xC2; b <= 0xDF; b++ {
		leadClass[b] = ClassTwoByte
	}
	leadClass[0xE0] = ClassThreeByteSpecialLower
	for b := 0xE1; b <= 0xEC; b++ {
		leadClass[b] = ClassThreeByteNormal
	}
	leadClass[0xED] = ClassThreeByteSpecialUpper
	leadClass[0xEE] = ClassThreeByteNormal
	leadClass[0xEF] = ClassThreeByteNormal
	leadClass[0xF0] = ClassFourByteSpecialLower
	leadClass[0xF1] = ClassFourByteNormal
	leadClass[0xF2] = ClassFourByteNormal
	leadClass[0xF3] = ClassFourByteNormal
	leadClass[0xF4] = ClassFourByteSpecialUpper
	for b := 0xF5; b <= 0xFF; b++ {
		leadClass[b] = ClassInvalid
	}
}

func isASCIIPunctuation(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}

// ClassOf returns the lead-byte class of b.
func ClassOf(b byte) LeadClass { return leadClass[b] }

// TrailRange returns the inclusive bound the first trail byte following a
// lead of the given class must satisfy, and the total number of trailing
// bytes the sequence needs.
func TrailRange(class LeadClass) (lower, upper byte, needed int) {
	switch class {
	case ClassTwoByte:
		return 0x80, 0xBF, 1
	case ClassThreeByteNormal:
		return 0x80, 0xBF, 2
	case ClassThreeByteSpecialLower:
		return 0xA0, 0xBF, 2
	case ClassThreeByteSpecialUpper:
		return 0x80, 0x9F, 2
	case ClassFourByteNormal:
		return 0x80, 0xBF, 3
	case ClassFourByteSpecialLower:
		return 0x90, 0xBF, 3
	case ClassFourByteSpecialUpper:
		return 0x80, 0x8F, 3
	default:
		return 0, 0, 0
	}
}

// GenericTrailOK reports whether b is a valid trail byte in the ordinary
// 0x80..=0xBF range, the bound that applies to every continuation byte
// after the first.
func GenericTrailOK(b byte) bool { return b >= 0x80 && b <= 0xBF }
