// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

// Composite (Type0/CID-keyed) font support. A Type0 font's own dictionary
// carries only /Encoding (normally one of the predefined Identity-H/V CMaps
// or an embedded CMap stream) and /ToUnicode; glyph widths and the actual
// descendant CIDFont come from /DescendantFonts[0], per ISO 32000-1 §9.7.

// IsCIDFont reports whether f is a composite (Type0) font.
func (f Font) IsCIDFont() bool {
	return f.V.Key("Subtype").Name() == "Type0"
}

// DescendantFont returns the CIDFontType0 or CIDFontType2 dictionary
// backing a Type0 font. It returns the null Value for simple fonts.
func (f Font) DescendantFont() Value {
	df := f.V.Key("DescendantFonts")
	if df.Kind() != Array || df.Len() == 0 {
		return Value{}
	}
	return df.Index(0)
}

// defaultCIDWidth is the fallback glyph width (in 1/1000 em units) used
// when a CID has no explicit entry in /W, per the /DW default of 1000.
const defaultCIDWidth = 1000.0

// CIDWidth returns the width, in 1/1000 em units, of the given CID as
// defined by the descendant font's /W array, falling back to /DW (or
// defaultCIDWidth if /DW is absent).
//
// /W has the form [ c [w1 w2 ...] c_first c_last w ... ], mixing two run
// encodings: a CID followed by an array of individual widths, or a CID
// range followed by a single width applied to the whole range.
func (f Font) CIDWidth(cid int) float64 {
	desc := f.DescendantFont()
	if desc.IsNull() {
		return defaultCIDWidth
	}
	dw := defaultCIDWidth
	if v := desc.Key("DW"); !v.IsNull() {
		dw = v.Float64()
	}
	w := desc.Key("W")
	if w.Kind() != Array {
		return dw
	}
	for i := 0; i < w.Len(); {
		first := int(w.Index(i).Int64())
		i++
		if i >= w.Len() {
			break
		}
		next := w.Index(i)
		if next.Kind() == Array {
			if cid >= first && cid-first < next.Len() {
				return next.Index(cid - first).Float64()
			}
			i++
			continue
		}
		last := int(next.Int64())
		i++
		if i >= w.Len() {
			break
		}
		width := w.Index(i).Float64()
		i++
		if cid >= first && cid <= last {
			return width
		}
	}
	return dw
}
