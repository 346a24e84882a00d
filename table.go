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

// CharsetFont names the default font to use for a charset.
type CharsetFont struct {
	Charset  Charset
	FontName string
}

// defaultTTFMap lists fallback fonts for charsets.  The list is terminated
// by an entry with Charset -1 and an empty font name.
var defaultTTFMap = [...]CharsetFont{
	{CharsetANSI, "Helvetica"},
	{CharsetGB2312, "SimSun"},
	{CharsetChineseBig5, "MingLiU"},
	{CharsetShiftJIS, "MS Gothic"},
	{CharsetHangeul, "Batang"},
	{CharsetCyrillic, "Arial"},
	{CharsetEasternEuropean, "Tahoma"},
	{CharsetArabic, "Arial"},
	{CharsetGreek, "Arial"},
	{CharsetHebrew, "Arial"},
	{CharsetVietnamese, "Arial"},
	{CharsetThai, "Tahoma"},
	{charsetEnd, ""},
}

// DefaultTTFMap returns the default map from charsets to TrueType font
// names.  The last entry of the returned slice has Charset -1 and an
// empty FontName.  The slice is a copy and may be modified by the caller.
func DefaultTTFMap() []CharsetFont {
	res := make([]CharsetFont, len(defaultTTFMap))
	copy(res, defaultTTFMap[:])
	return res
}

// LookupCharsetFont returns the default font name for the given charset.
// The second return value is false if the table has no entry for cs.
func LookupCharsetFont(cs Charset) (string, bool) {
	return LookupCharsetFontIn(defaultTTFMap[:], cs)
}

// LookupCharsetFontIn is like LookupCharsetFont, but uses a caller
// supplied table.  The table must be terminated like the one returned by
// DefaultTTFMap; entries after the terminator are ignored.
func LookupCharsetFontIn(table []CharsetFont, cs Charset) (string, bool) {
	for _, e := range table {
		if e.Charset == charsetEnd {
			break
		}
		if e.Charset == cs {
			return e.FontName, true
		}
	}
	return "", false
}
