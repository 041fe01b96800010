// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"encoding/binary"
	"errors"
)

// Minimal SFNT table-directory reader and cmap subtable parser, used only
// as a last-resort fallback: a CIDFontType2 descendant with an embedded
// FontFile2 and an Adobe-Identity encoding but no /ToUnicode stream. In
// that situation the CID equals the glyph index (Identity CIDToGIDMap),
// and the only way back to Unicode is the font program's own cmap table.

var errNoCmapTable = errors.New("truetype: no cmap table in font program")

type sfntDirEntry struct {
	tag            string
	offset, length uint32
}

// readSFNTDirectory walks the table directory at the front of a TrueType
// or OpenType font program, grounded on the same offset-table layout
// OpenType uses for all of its tables.
func readSFNTDirectory(data []byte) (map[string]sfntDirEntry, error) {
	if len(data) < 12 {
		return nil, errors.New("truetype: font program too short")
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	dir := make(map[string]sfntDirEntry, numTables)
	const recSize = 16
	for i := 0; i < numTables; i++ {
		off := 12 + i*recSize
		if off+recSize > len(data) {
			break
		}
		rec := data[off : off+recSize]
		tag := string(rec[0:4])
		entry := sfntDirEntry{
			tag:    tag,
			offset: binary.BigEndian.Uint32(rec[8:12]),
			length: binary.BigEndian.Uint32(rec[12:16]),
		}
		dir[tag] = entry
	}
	return dir, nil
}

// cmapGIDToRune parses the cmap table of an embedded TrueType font program
// and returns the inverse mapping (glyph index -> Unicode code point),
// picking the subtable whose (platform, encoding) pair ranks highest under
// rankCmapSubtable and inverting it when its format is 4, 2 or 0. Ties
// (more than one code point mapping to the same glyph) keep the first
// code point encountered.
func cmapGIDToRune(fontProgram []byte) (map[int]rune, error) {
	dir, err := readSFNTDirectory(fontProgram)
	if err != nil {
		return nil, err
	}
	entry, ok := dir["cmap"]
	if !ok {
		return nil, errNoCmapTable
	}
	if int(entry.offset+entry.length) > len(fontProgram) || entry.length < 4 {
		return nil, errNoCmapTable
	}
	cmapData := fontProgram[entry.offset : entry.offset+entry.length]

	numSubtables := int(binary.BigEndian.Uint16(cmapData[2:4]))
	var best uint32
	bestRank := -1
	for i := 0; i < numSubtables; i++ {
		recOff := 4 + i*8
		if recOff+8 > len(cmapData) {
			break
		}
		platformID := binary.BigEndian.Uint16(cmapData[recOff : recOff+2])
		encodingID := binary.BigEndian.Uint16(cmapData[recOff+2 : recOff+4])
		subOffset := binary.BigEndian.Uint32(cmapData[recOff+4 : recOff+8])

		rank := rankCmapSubtable(platformID, encodingID)
		if rank > bestRank {
			bestRank = rank
			best = subOffset
		}
	}
	if bestRank < 0 {
		return nil, errNoCmapTable
	}
	if int(best) >= len(cmapData) {
		return nil, errNoCmapTable
	}
	sub := cmapData[best:]
	format := binary.BigEndian.Uint16(sub[0:2])
	switch format {
	case 0:
		return invertCmapFormat0(sub)
	case 2:
		return invertCmapFormat2(sub)
	case 4:
		return invertCmapFormat4(sub)
	}
	return nil, errNoCmapTable
}

// rankCmapSubtable scores a (platform, encoding) pair so the best
// available Unicode subtable is preferred: Windows BMP Unicode first, any
// Unicode-platform subtable next, then Windows Symbol, then Mac Roman as a
// last resort.
func rankCmapSubtable(platformID, encodingID uint16) int {
	switch {
	case platformID == 3 && encodingID == 1:
		return 3
	case platformID == 0:
		return 2
	case platformID == 3 && encodingID == 0:
		return 1
	case platformID == 1 && encodingID == 0:
		return 0
	}
	return -1
}

// invertCmapFormat0 inverts a byte-encoding table: glyph index per code
// point 0-255.
func invertCmapFormat0(sub []byte) (map[int]rune, error) {
	if len(sub) < 262 {
		return nil, errNoCmapTable
	}
	out := make(map[int]rune)
	for code := 0; code < 256; code++ {
		gid := int(sub[6+code])
		if gid != 0 {
			if _, ok := out[gid]; !ok {
				out[gid] = rune(code)
			}
		}
	}
	return out, nil
}

// invertCmapFormat2 inverts the high-byte-mapping-through-table format
// used by some legacy CJK fonts: a 256-entry subheader-key table selects
// one of several (firstCode, entryCount, idDelta, idRangeOffset) runs.
func invertCmapFormat2(sub []byte) (map[int]rune, error) {
	if len(sub) < 6+512 {
		return nil, errNoCmapTable
	}
	out := make(map[int]rune)
	subHeaderKeys := sub[6 : 6+512]
	for hiByte := 0; hiByte < 256; hiByte++ {
		key := int(binary.BigEndian.Uint16(subHeaderKeys[hiByte*2:])) / 8
		shOff := 6 + 512 + key*8
		if shOff+8 > len(sub) {
			continue
		}
		firstCode := int(binary.BigEndian.Uint16(sub[shOff:]))
		entryCount := int(binary.BigEndian.Uint16(sub[shOff+2:]))
		idDelta := int(int16(binary.BigEndian.Uint16(sub[shOff+4:])))
		idRangeOffset := int(binary.BigEndian.Uint16(sub[shOff+6:]))
		glyphArrayBase := shOff + 6 + idRangeOffset
		for j := 0; j < entryCount; j++ {
			pos := glyphArrayBase + j*2
			if pos+2 > len(sub) {
				break
			}
			gid := int(binary.BigEndian.Uint16(sub[pos:]))
			if gid == 0 {
				continue
			}
			gid = (gid + idDelta) & 0xFFFF
			var code int
			if key == 0 {
				code = firstCode + j
			} else {
				code = hiByte<<8 | (firstCode + j)
			}
			if _, ok := out[gid]; !ok {
				out[gid] = rune(code)
			}
		}
	}
	return out, nil
}

// invertCmapFormat4 inverts the common segmented BMP mapping format:
// parallel endCode/startCode/idDelta/idRangeOffset arrays, each segment
// covering a contiguous run of code points.
func invertCmapFormat4(sub []byte) (map[int]rune, error) {
	if len(sub) < 14 {
		return nil, errNoCmapTable
	}
	segCountX2 := int(binary.BigEndian.Uint16(sub[6:8]))
	segCount := segCountX2 / 2
	endCodeOff := 14
	startCodeOff := endCodeOff + segCountX2 + 2 // skip reservedPad
	idDeltaOff := startCodeOff + segCountX2
	idRangeOff := idDeltaOff + segCountX2
	if idRangeOff+segCountX2 > len(sub) {
		return nil, errNoCmapTable
	}

	out := make(map[int]rune)
	for seg := 0; seg < segCount; seg++ {
		endCode := int(binary.BigEndian.Uint16(sub[endCodeOff+seg*2:]))
		startCode := int(binary.BigEndian.Uint16(sub[startCodeOff+seg*2:]))
		idDelta := int(int16(binary.BigEndian.Uint16(sub[idDeltaOff+seg*2:])))
		idRangeOffset := int(binary.BigEndian.Uint16(sub[idRangeOff+seg*2:]))
		if startCode == 0xFFFF && endCode == 0xFFFF {
			continue
		}
		for code := startCode; code <= endCode && code != 0xFFFF; code++ {
			var gid int
			if idRangeOffset == 0 {
				gid = (code + idDelta) & 0xFFFF
			} else {
				pos := idRangeOff + seg*2 + idRangeOffset + (code-startCode)*2
				if pos+2 > len(sub) {
					continue
				}
				gid = int(binary.BigEndian.Uint16(sub[pos:]))
				if gid == 0 {
					continue
				}
				gid = (gid + idDelta) & 0xFFFF
			}
			if gid == 0 {
				continue
			}
			if _, ok := out[gid]; !ok {
				out[gid] = rune(code)
			}
		}
	}
	return out, nil
}

// cidGIDEncoder decodes a 2-byte CID string straight to Unicode using a
// font program's inverted cmap table, for CIDFontType2 fonts whose CID
// equals glyph index (Identity CIDToGIDMap) and which carry no /ToUnicode.
type cidGIDEncoder struct {
	table map[int]rune
}

func (e *cidGIDEncoder) Decode(raw string) string {
	r := make([]rune, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		gid := int(raw[i])<<8 | int(raw[i+1])
		if ch, ok := e.table[gid]; ok {
			r = append(r, ch)
		}
	}
	return string(r)
}
