// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import "io"

// alphaReader filters an underlying reader down to bytes that are valid
// ASCII85 alphabet members ('!' through 'u'), zeroing anything else in
// place so the caller's buffer keeps its original length. It stops
// forwarding real bytes once it has seen the "~" end-of-data marker,
// zeroing the rest of the read and of every later read instead of
// returning early, so short reads never confuse a caller that assumes
// len(buf) bytes were consumed from the source.
type alphaReader struct {
	r    io.Reader
	done bool
}

// newAlphaReader wraps r, a raw ASCII85Decode stream that may carry
// embedded whitespace and the "~>" end marker, so it can be handed
// straight to encoding/ascii85.NewDecoder. A leading "<~" delimiter is not
// stripped: its '~' is taken as the end marker, so no data after it is
// forwarded.
func newAlphaReader(r io.Reader) io.Reader {
	return &alphaReader{r: r}
}

func isAlpha85(c byte) bool {
	return c >= '!' && c <= 'u'
}

func (a *alphaReader) Read(buf []byte) (int, error) {
	n, err := a.r.Read(buf)
	if n <= 0 {
		return n, err
	}

	for i := 0; i < n; i++ {
		if a.done {
			buf[i] = 0
			continue
		}
		c := buf[i]
		if c == '~' {
			// Consume the terminator's closing '>' if it is already
			// in this chunk; either way, stop forwarding bytes.
			a.done = true
			buf[i] = 0
			continue
		}
		if !isAlpha85(c) {
			buf[i] = 0
			continue
		}
	}
	return n, err
}
