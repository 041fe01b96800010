// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"math"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// isPDFDocEncoded reports whether s looks like a plain PDFDocEncoded byte
// string rather than big-endian UTF-16 (which always opens with the
// 0xFEFF byte-order mark) or a string that contains a byte PDFDocEncoding
// leaves unmapped.
func isPDFDocEncoded(s string) bool {
	if isUTF16(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if pdfDocEncoding[s[i]] == unicode.ReplacementChar {
			return false
		}
	}
	return true
}

// pdfDocDecode converts a PDFDocEncoded byte string to UTF-8.
func pdfDocDecode(s string) string {
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = pdfDocEncoding[s[i]]
	}
	return string(r)
}

// isUTF16 reports whether s opens with the UTF-16BE byte-order mark and
// has an even length, as required of a PDF text string encoded per
// ISO 32000-1 §7.9.2.2.
func isUTF16(s string) bool {
	if len(s) < 2 || len(s)%2 != 0 {
		return false
	}
	return s[0] == 0xfe && s[1] == 0xff
}

// utf16Decode decodes s, a sequence of big-endian UTF-16 code units (with
// any byte-order mark already stripped by the caller), into UTF-8.
func utf16Decode(s string) string {
	units := make([]uint16, len(s)/2)
	for i := range units {
		units[i] = uint16(s[2*i])<<8 | uint16(s[2*i+1])
	}
	return string(utf16.Decode(units))
}

// DecodeUTF8OrPreserve decodes s as UTF-8 when it is valid UTF-8, and
// otherwise returns the raw bytes widened to rune so no information from an
// unmapped or out-of-codespace character code is lost.
func DecodeUTF8OrPreserve(s string) []rune {
	if utf8.ValidString(s) {
		return []rune(s)
	}
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = rune(s[i])
	}
	return r
}

// sameSentenceYTolerance is the minimum bound on how far two text runs can
// drift vertically and still be considered the same line; IsSameSentence
// raises it to half the font size for larger text, so larger headings
// tolerate proportionally larger baseline jitter.
const sameSentenceYTolerance = 5.0

// IsSameSentence reports whether current continues the same visual line
// of text as last: same font, approximately the same size, and close
// enough in Y to be the same baseline. An empty last.S means there is no
// sentence to continue.
func IsSameSentence(last, current Text) bool {
	if last.S == "" {
		return false
	}
	if last.Font != current.Font {
		return false
	}
	if math.Abs(last.FontSize-current.FontSize) > 0.5 {
		return false
	}
	tol := sameSentenceYTolerance
	if last.FontSize*0.5 > tol {
		tol = last.FontSize * 0.5
	}
	return math.Abs(last.Y-current.Y) <= tol
}
