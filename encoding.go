// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"strconv"
	"strings"
	"unicode"
)

// Simple-font character maps. Each is indexed by the raw byte code; an
// unmapped code decodes to unicode.ReplacementChar so callers can tell a
// real gap in the table from a mapping to U+0000.

var winAnsiEncoding = buildASCIITable(map[int]rune{
	39:  '\'',
	96:  '`',
	128: '€', 130: '‚', 131: 'ƒ', 132: '„', 133: '…',
	134: '†', 135: '‡', 136: 'ˆ', 137: '‰', 138: 'Š',
	139: '‹', 140: 'Œ', 142: 'Ž', 145: '‘', 146: '’',
	147: '“', 148: '”', 149: '•', 150: '–', 151: '—',
	152: '˜', 153: '™', 154: 'š', 155: '›', 156: 'œ',
	158: 'ž', 159: 'Ÿ',
	160: ' ', 161: '¡', 162: '¢', 163: '£', 164: '¤',
	165: '¥', 166: '¦', 167: '§', 168: '¨', 169: '©',
	170: 'ª', 171: '«', 172: '¬', 173: '­', 174: '®',
	175: '¯', 176: '°', 177: '±', 178: '²', 179: '³',
	180: '´', 181: 'µ', 182: '¶', 183: '·', 184: '¸',
	185: '¹', 186: 'º', 187: '»', 188: '¼', 189: '½',
	190: '¾', 191: '¿', 192: 'À', 193: 'Á', 194: 'Â',
	195: 'Ã', 196: 'Ä', 197: 'Å', 198: 'Æ', 199: 'Ç',
	200: 'È', 201: 'É', 202: 'Ê', 203: 'Ë', 204: 'Ì',
	205: 'Í', 206: 'Î', 207: 'Ï', 208: 'Ð', 209: 'Ñ',
	210: 'Ò', 211: 'Ó', 212: 'Ô', 213: 'Õ', 214: 'Ö',
	215: '×', 216: 'Ø', 217: 'Ù', 218: 'Ú', 219: 'Û',
	220: 'Ü', 221: 'Ý', 222: 'Þ', 223: 'ß', 224: 'à',
	225: 'á', 226: 'â', 227: 'ã', 228: 'ä', 229: 'å',
	230: 'æ', 231: 'ç', 232: 'è', 233: 'é', 234: 'ê',
	235: 'ë', 236: 'ì', 237: 'í', 238: 'î', 239: 'ï',
	240: 'ð', 241: 'ñ', 242: 'ò', 243: 'ó', 244: 'ô',
	245: 'õ', 246: 'ö', 247: '÷', 248: 'ø', 249: 'ù',
	250: 'ú', 251: 'û', 252: 'ü', 253: 'ý', 254: 'þ',
	255: 'ÿ',
})

var macRomanEncoding = buildASCIITable(map[int]rune{
	39: '\'', 96: '`',
	128: 'Ä', 129: 'Å', 130: 'Ç', 131: 'É', 132: 'Ñ',
	133: 'Ö', 134: 'Ü', 135: 'á', 136: 'à', 137: 'â',
	138: 'ä', 139: 'ã', 140: 'å', 141: 'ç', 142: 'é',
	143: 'è', 144: 'ê', 145: 'ë', 146: 'í', 147: 'ì',
	148: 'î', 149: 'ï', 150: 'ñ', 151: 'ó', 152: 'ò',
	153: 'ô', 154: 'ö', 155: 'õ', 156: 'ú', 157: 'ù',
	158: 'û', 159: 'ü', 160: '†', 161: '°', 162: '¢',
	163: '£', 164: '§', 165: '•', 166: '¶', 167: 'ß',
	168: '®', 169: '©', 170: '™', 171: '´', 172: '¨',
	173: '≠', 174: 'Æ', 175: 'Ø', 176: '∞', 177: '±',
	178: '≤', 179: '≥', 180: '¥', 181: 'µ', 182: '∂',
	183: '∑', 184: '∏', 185: 'π', 186: '∫', 187: 'ª',
	188: 'º', 189: 'Ω', 190: 'æ', 191: 'ø', 192: '¿',
	193: '¡', 194: '¬', 195: '√', 196: 'ƒ', 197: '≈',
	198: '∆', 199: '«', 200: '»', 201: '…', 202: ' ',
	203: 'À', 204: 'Ã', 205: 'Õ', 206: 'Œ', 207: 'œ',
	208: '–', 209: '—', 210: '“', 211: '”', 212: '‘',
	213: '’', 214: '÷', 215: '◊', 216: 'ÿ', 217: 'Ÿ',
	218: '⁄', 219: '€', 220: '‹', 221: '›', 222: 'ﬁ',
	223: 'ﬂ', 224: '‡', 225: '·', 226: '‚', 227: '„',
	228: '‰', 229: 'Â', 230: 'Ê', 231: 'Á', 232: 'Ë',
	233: 'È', 234: 'Í', 235: 'Î', 236: 'Ï', 237: 'Ì',
	238: 'Ó', 239: 'Ô', 240: '', 241: 'Ò', 242: 'Ú',
	243: 'Û', 244: 'Ù', 245: 'ı', 246: 'ˆ', 247: '˜',
	248: '¯', 249: '˘', 250: '˙', 251: '˚', 252: '¸',
	253: '˝', 254: '˛', 255: 'ˇ',
})

var standardEncoding = buildASCIITable(map[int]rune{
	39: '’', 96: '‘',
})

// pdfDocEncoding mirrors Latin-1 through the printable ASCII and upper
// ranges and fills PDFDocEncoding's 0x18-0x1F and 0x80-0x9E glyphs; the
// remaining control codes (0x00-0x17, 0x7F, 0x9F) are left as
// unicode.ReplacementChar, which also lets isPDFDocEncoded reject byte
// strings that are really UTF-16BE.
var pdfDocEncoding = buildPDFDocTable()

func buildASCIITable(overrides map[int]rune) [256]rune {
	var t [256]rune
	for i := range t {
		t[i] = unicode.ReplacementChar
	}
	for i := 32; i < 127; i++ {
		t[i] = rune(i)
	}
	for code, r := range overrides {
		t[code] = r
	}
	return t
}

func buildPDFDocTable() [256]rune {
	t := buildASCIITable(nil)
	t[0x18] = '˘'
	t[0x19] = 'ˇ'
	t[0x1A] = 'ˆ'
	t[0x1B] = '˙'
	t[0x1C] = '˝'
	t[0x1D] = '˛'
	t[0x1E] = '˚'
	t[0x1F] = '˜'
	for i, r := range winAnsiRuneRange(0xA0, 0xFF) {
		t[0xA0+i] = r
	}
	t[0x80] = '•'
	t[0x81] = '†'
	t[0x82] = '‡'
	t[0x83] = '…'
	t[0x84] = '—'
	t[0x85] = '–'
	t[0x86] = 'ƒ'
	t[0x87] = '⁄'
	t[0x88] = '‹'
	t[0x89] = '›'
	t[0x8A] = '−'
	t[0x8B] = '‰'
	t[0x8C] = '„'
	t[0x8D] = '“'
	t[0x8E] = '”'
	t[0x8F] = '‘'
	t[0x90] = '’'
	t[0x91] = '‚'
	t[0x92] = '™'
	t[0x93] = 'ﬁ'
	t[0x94] = 'ﬂ'
	t[0x95] = 'Ł'
	t[0x96] = 'Œ'
	t[0x97] = 'Š'
	t[0x98] = 'Ÿ'
	t[0x99] = 'Ž'
	t[0x9A] = 'ı'
	t[0x9B] = 'ł'
	t[0x9C] = 'œ'
	t[0x9D] = 'š'
	t[0x9E] = 'ž'
	return t
}

// winAnsiRuneRange pulls a contiguous run out of winAnsiEncoding; PDFDoc and
// WinAnsi agree on the Latin-1 supplement, so building the table this way
// keeps the two tables from silently drifting apart.
func winAnsiRuneRange(lo, hi int) []rune {
	out := make([]rune, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, winAnsiEncoding[i])
	}
	return out
}

// nameToRune is the Adobe Glyph List subset needed to decode a font's
// /Differences array into Unicode. Names outside the table fall back to
// the uniXXXX / uXXXX[X] escapes handled by glyphNameToRune.
var nameToRune = map[string]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"parenleft": '(', "parenright": ')', "asterisk": '*', "plus": '+',
	"comma": ',', "hyphen": '-', "period": '.', "slash": '/',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=',
	"greater": '>', "question": '?', "at": '@',
	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F', "G": 'G',
	"H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L', "M": 'M', "N": 'N',
	"O": 'O', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S', "T": 'T', "U": 'U',
	"V": 'V', "W": 'W', "X": 'X', "Y": 'Y', "Z": 'Z',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`',
	"a": 'a', "b": 'b', "c": 'c', "d": 'd', "e": 'e', "f": 'f', "g": 'g',
	"h": 'h', "i": 'i', "j": 'j', "k": 'k', "l": 'l', "m": 'm', "n": 'n',
	"o": 'o', "p": 'p', "q": 'q', "r": 'r', "s": 's', "t": 't', "u": 'u',
	"v": 'v', "w": 'w', "x": 'x', "y": 'y', "z": 'z',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
	"exclamdown": '¡', "cent": '¢', "sterling": '£', "currency": '¤',
	"yen": '¥', "brokenbar": '¦', "section": '§', "dieresis": '¨',
	"copyright": '©', "ordfeminine": 'ª', "guillemotleft": '«',
	"logicalnot": '¬', "registered": '®', "macron": '¯', "degree": '°',
	"plusminus": '±', "twosuperior": '²', "threesuperior": '³',
	"acute": '´', "mu": 'µ', "paragraph": '¶', "periodcentered": '·',
	"cedilla": '¸', "onesuperior": '¹', "ordmasculine": 'º',
	"guillemotright": '»', "onequarter": '¼', "onehalf": '½',
	"threequarters": '¾', "questiondown": '¿',
	"Agrave": 'À', "Aacute": 'Á', "Acircumflex": 'Â', "Atilde": 'Ã',
	"Adieresis": 'Ä', "Aring": 'Å', "AE": 'Æ', "Ccedilla": 'Ç',
	"Egrave": 'È', "Eacute": 'É', "Ecircumflex": 'Ê', "Edieresis": 'Ë',
	"Igrave": 'Ì', "Iacute": 'Í', "Icircumflex": 'Î', "Idieresis": 'Ï',
	"Eth": 'Ð', "Ntilde": 'Ñ', "Ograve": 'Ò', "Oacute": 'Ó',
	"Ocircumflex": 'Ô', "Otilde": 'Õ', "Odieresis": 'Ö', "multiply": '×',
	"Oslash": 'Ø', "Ugrave": 'Ù', "Uacute": 'Ú', "Ucircumflex": 'Û',
	"Udieresis": 'Ü', "Yacute": 'Ý', "Thorn": 'Þ', "germandbls": 'ß',
	"agrave": 'à', "aacute": 'á', "acircumflex": 'â', "atilde": 'ã',
	"adieresis": 'ä', "aring": 'å', "ae": 'æ', "ccedilla": 'ç',
	"egrave": 'è', "eacute": 'é', "ecircumflex": 'ê', "edieresis": 'ë',
	"igrave": 'ì', "iacute": 'í', "icircumflex": 'î', "idieresis": 'ï',
	"eth": 'ð', "ntilde": 'ñ', "ograve": 'ò', "oacute": 'ó',
	"ocircumflex": 'ô', "otilde": 'õ', "odieresis": 'ö', "divide": '÷',
	"oslash": 'ø', "ugrave": 'ù', "uacute": 'ú', "ucircumflex": 'û',
	"udieresis": 'ü', "yacute": 'ý', "thorn": 'þ', "ydieresis": 'ÿ',
	"OE": 'Œ', "oe": 'œ', "Scaron": 'Š', "scaron": 'š',
	"Ydieresis": 'Ÿ', "Zcaron": 'Ž', "zcaron": 'ž', "florin": 'ƒ',
	"circumflex": 'ˆ', "caron": 'ˇ', "breve": '˘', "dotaccent": '˙',
	"ring": '˚', "ogonek": '˛', "tilde": '˜', "hungarumlaut": '˝',
	"endash": '–', "emdash": '—', "quoteleft": '‘', "quoteright": '’',
	"quotesinglbase": '‚', "quotedblleft": '“', "quotedblright": '”',
	"quotedblbase": '„', "dagger": '†', "daggerdbl": '‡', "bullet": '•',
	"ellipsis": '…', "perthousand": '‰', "guilsinglleft": '‹',
	"guilsinglright": '›', "fraction": '⁄', "Euro": '€',
	"trademark": '™', "minus": '−', "fi": 'ﬁ', "fl": 'ﬂ', "ff": 'ﬀ',
	"ffi": 'ﬃ', "ffl": 'ﬄ', "dotlessi": 'ı', "Lslash": 'Ł', "lslash": 'ł',
}

// glyphNameToRune resolves a /Differences glyph name to Unicode, checking
// the Adobe Glyph List subset in nameToRune first and falling back to the
// uniXXXX / uXXXX[X] escape conventions for names the table doesn't carry.
func glyphNameToRune(n string) rune {
	if r, ok := nameToRune[n]; ok {
		return r
	}
	if strings.HasPrefix(n, "uni") && len(n) == 7 {
		if v, err := strconv.ParseInt(n[3:], 16, 32); err == nil {
			return rune(v)
		}
	}
	if strings.HasPrefix(n, "u") && (len(n) == 5 || len(n) == 6) {
		if v, err := strconv.ParseInt(n[1:], 16, 32); err == nil {
			return rune(v)
		}
	}
	return 0
}
