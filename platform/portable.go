package platform

import (
	"unicode/utf16"
	"unicode/utf8"

	unicodeconv "github.com/wippyai/unicode-conv"
)

const (
	// 0xd800-0xdc00 encodes the high 10 bits of a surrogate pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

// Portable is a pure Go conversion backend. It implements the same contract
// as the native Windows backend, including the error codes, so the two are
// interchangeable.
//
// Validation is strict: unpaired surrogates and ill-formed UTF-8 sequences
// fail with CodeNoUnicodeTranslation rather than being replaced.
type Portable struct{}

// WideToMulti converts UTF-16 code units to UTF-8 bytes.
// A nil dst measures the required byte count without writing.
func (Portable) WideToMulti(src []uint16, dst []byte) (int, uint32) {
	if len(src) == 0 {
		return 0, unicodeconv.CodeInvalidParameter
	}

	n := 0
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		switch {
		case surr1 <= r && r < surr2 && i+1 < len(src) &&
			surr2 <= src[i+1] && src[i+1] < surr3:
			// valid surrogate pair
			r = utf16.DecodeRune(r, rune(src[i+1]))
			i++
		case surr1 <= r && r < surr3:
			// unpaired surrogate
			return 0, unicodeconv.CodeNoUnicodeTranslation
		}

		size := utf8.RuneLen(r)
		if dst != nil {
			if n+size > len(dst) {
				return 0, unicodeconv.CodeInsufficientBuffer
			}
			utf8.EncodeRune(dst[n:], r)
		}
		n += size
	}

	return n, 0
}

// MultiToWide converts UTF-8 bytes to UTF-16 code units.
// A nil dst measures the required code-unit count without writing.
func (Portable) MultiToWide(src []byte, srcLen int32, dst []uint16) (int, uint32) {
	if srcLen <= 0 || int(srcLen) > len(src) {
		return 0, unicodeconv.CodeInvalidParameter
	}
	src = src[:srcLen]

	n := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			// ill-formed sequence: lone continuation byte, overlong
			// encoding, encoded surrogate, or truncated rune
			return 0, unicodeconv.CodeNoUnicodeTranslation
		}
		i += size

		units := utf16.RuneLen(r)
		if dst != nil {
			if n+units > len(dst) {
				return 0, unicodeconv.CodeInsufficientBuffer
			}
			if units == 1 {
				dst[n] = uint16(r)
			} else {
				hi, lo := utf16.EncodeRune(r)
				dst[n] = uint16(hi)
				dst[n+1] = uint16(lo)
			}
		}
		n += units
	}

	return n, 0
}
