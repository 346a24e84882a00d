// seehuhn.de/go/sysfont - font substitution for PDF renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sysfont

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/language"
)

// Charset identifies a coded character set, using the values of the
// Windows LOGFONT lfCharSet field.
type Charset int

// The supported character sets.
const (
	CharsetANSI            Charset = 0
	CharsetDefault         Charset = 1
	CharsetSymbol          Charset = 2
	CharsetShiftJIS        Charset = 128
	CharsetHangeul         Charset = 129
	CharsetGB2312          Charset = 134
	CharsetChineseBig5     Charset = 136
	CharsetGreek           Charset = 161
	CharsetVietnamese      Charset = 163
	CharsetHebrew          Charset = 177
	CharsetArabic          Charset = 178
	CharsetCyrillic        Charset = 204
	CharsetThai            Charset = 222
	CharsetEasternEuropean Charset = 238
)

// charsetEnd terminates the charset font table.
const charsetEnd Charset = -1

// AllCharsets lists the supported character sets in increasing order.
var AllCharsets = []Charset{
	CharsetANSI,
	CharsetDefault,
	CharsetSymbol,
	CharsetShiftJIS,
	CharsetHangeul,
	CharsetGB2312,
	CharsetChineseBig5,
	CharsetGreek,
	CharsetVietnamese,
	CharsetHebrew,
	CharsetArabic,
	CharsetCyrillic,
	CharsetThai,
	CharsetEasternEuropean,
}

var charsetNames = map[Charset]string{
	CharsetANSI:            "ANSI",
	CharsetDefault:         "Default",
	CharsetSymbol:          "Symbol",
	CharsetShiftJIS:        "ShiftJIS",
	CharsetHangeul:         "Hangeul",
	CharsetGB2312:          "GB2312",
	CharsetChineseBig5:     "ChineseBig5",
	CharsetGreek:           "Greek",
	CharsetVietnamese:      "Vietnamese",
	CharsetHebrew:          "Hebrew",
	CharsetArabic:          "Arabic",
	CharsetCyrillic:        "Cyrillic",
	CharsetThai:            "Thai",
	CharsetEasternEuropean: "EasternEuropean",
}

func (cs Charset) String() string {
	if name, ok := charsetNames[cs]; ok {
		return name
	}
	return "Charset(" + strconv.Itoa(int(cs)) + ")"
}

// IsValid reports whether cs is one of the supported character sets.
func (cs Charset) IsValid() bool {
	_, ok := charsetNames[cs]
	return ok
}

// AcceptsAny reports whether a request for cs can be served by a font
// with any character set.
func (cs Charset) AcceptsAny() bool {
	return cs == CharsetDefault || cs == CharsetSymbol
}

// ParseCharset converts a charset name (as returned by String, case is
// ignored) or a decimal charset number to a Charset.
func ParseCharset(s string) (Charset, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		cs := Charset(n)
		return cs, cs.IsValid()
	}
	for cs, name := range charsetNames {
		if strings.EqualFold(name, s) {
			return cs, true
		}
	}
	return 0, false
}

// Encoding returns the legacy byte encoding associated with the charset.
// The result is nil for CharsetDefault, CharsetSymbol and unknown values.
func (cs Charset) Encoding() encoding.Encoding {
	switch cs {
	case CharsetANSI:
		return charmap.Windows1252
	case CharsetEasternEuropean:
		return charmap.Windows1250
	case CharsetCyrillic:
		return charmap.Windows1251
	case CharsetGreek:
		return charmap.Windows1253
	case CharsetHebrew:
		return charmap.Windows1255
	case CharsetArabic:
		return charmap.Windows1256
	case CharsetVietnamese:
		return charmap.Windows1258
	case CharsetThai:
		return charmap.Windows874
	case CharsetShiftJIS:
		return japanese.ShiftJIS
	case CharsetHangeul:
		return korean.EUCKR
	case CharsetGB2312:
		return simplifiedchinese.GBK
	case CharsetChineseBig5:
		return traditionalchinese.Big5
	default:
		return nil
	}
}

// DecodeName converts a face name given as a byte string to UTF-8.
// Valid UTF-8 input is returned unchanged.  Otherwise the bytes are
// decoded using the legacy encoding of cs, falling back to Latin-1 if
// the charset has no encoding or decoding fails.
func (cs Charset) DecodeName(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if enc := cs.Encoding(); enc != nil {
		out, err := enc.NewDecoder().Bytes(raw)
		if err == nil {
			return string(out)
		}
	}
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(out)
}

// charsetLanguages gives the primary language for the script-specific
// charsets.  The order of this list determines the order of preference
// in CharsetForLanguage.
var charsetLanguages = []struct {
	tag language.Tag
	cs  Charset
}{
	{language.English, CharsetANSI},
	{language.Japanese, CharsetShiftJIS},
	{language.Korean, CharsetHangeul},
	{language.SimplifiedChinese, CharsetGB2312},
	{language.TraditionalChinese, CharsetChineseBig5},
	{language.Greek, CharsetGreek},
	{language.Vietnamese, CharsetVietnamese},
	{language.Hebrew, CharsetHebrew},
	{language.Arabic, CharsetArabic},
	{language.Russian, CharsetCyrillic},
	{language.Ukrainian, CharsetCyrillic},
	{language.Bulgarian, CharsetCyrillic},
	{language.Serbian, CharsetCyrillic},
	{language.Thai, CharsetThai},
	{language.Polish, CharsetEasternEuropean},
	{language.Czech, CharsetEasternEuropean},
	{language.Hungarian, CharsetEasternEuropean},
	{language.Croatian, CharsetEasternEuropean},
	{language.Romanian, CharsetEasternEuropean},
	{language.Slovak, CharsetEasternEuropean},
	{language.Slovenian, CharsetEasternEuropean},
}

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(charsetLanguages))
	for i, e := range charsetLanguages {
		tags[i] = e.tag
	}
	return language.NewMatcher(tags)
}()

// CharsetForLanguage returns the charset most suitable for text in the
// given language.  Languages written in Latin script which are not
// covered by one of the Windows code pages map to CharsetANSI.
func CharsetForLanguage(tag language.Tag) Charset {
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return CharsetANSI
	}
	return charsetLanguages[idx].cs
}
