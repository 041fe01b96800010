// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"bytes"
	"io"
)

// newHexDecoder decodes an ASCIIHexDecode filter stream: whitespace-tolerant
// pairs of hex digits terminated by '>' (a trailing unpaired digit is padded
// with a low nibble of zero, per the filter's spec). Decoding happens eagerly
// against the whole stream, the same way newAlphaReader's caller feeds a
// bounded filter payload rather than an unbounded one; this keeps the
// decoder a plain byte-for-byte table lookup reusing the same unhex table
// the object lexer uses for hex string literals (object.go).
func newHexDecoder(r io.Reader) io.Reader {
	raw, err := io.ReadAll(r)
	if err != nil {
		return bytes.NewReader(nil)
	}
	out := make([]byte, 0, len(raw)/2)
	var hi int = -1
	for _, c := range raw {
		if c == '>' {
			break
		}
		if isSpace(c) {
			continue
		}
		v := unhex(c)
		if v < 0 {
			continue
		}
		if hi < 0 {
			hi = v
			continue
		}
		out = append(out, byte(hi<<4|v))
		hi = -1
	}
	if hi >= 0 {
		out = append(out, byte(hi<<4))
	}
	return bytes.NewReader(out)
}
