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

package catalog

import (
	"strings"

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/sysfont"
)

func fromSfnt(info *sfnt.Font) *Face {
	face := &Face{
		Name:           info.FullName(),
		Family:         info.FamilyName,
		PostScriptName: info.PostScriptName(),
		Weight:         info.Weight,
		Italic:         info.IsItalic || info.IsOblique,
		Charsets:       charsetsFromCodePages(uint64(info.CodePageRange)),
	}
	if face.Name == "" {
		face.Name = face.Family
	}
	if face.Weight == 0 {
		face.Weight = os2.WeightNormal
	}

	if info.IsFixedPitch() {
		face.PitchFamily |= sysfont.FixedPitch
	}
	switch {
	case info.IsScript:
		face.PitchFamily |= sysfont.Script
	case info.IsSerif:
		face.PitchFamily |= sysfont.Roman
	}
	return face
}

func fromType1(psFont *type1.Font) *Face {
	fi := psFont.FontInfo
	face := &Face{
		Name:           fi.FullName,
		Family:         fi.FamilyName,
		PostScriptName: fi.FontName,
		Weight:         os2.WeightFromString(fi.Weight),
		Italic:         fi.ItalicAngle != 0,
		Charsets:       []sysfont.Charset{sysfont.CharsetANSI},
	}
	if face.Family == "" {
		face.Family = sysfont.ParseBaseFont(fi.FontName).Family
	}
	if face.Name == "" {
		face.Name = face.Family
	}
	if face.Weight == 0 {
		face.Weight = os2.WeightNormal
	}
	if fi.IsFixedPitch {
		face.PitchFamily |= sysfont.FixedPitch
	}

	// Type 1 fonts have no charset information.  Fonts with
	// symbolic glyph sets are recognised by name.
	lower := strings.ToLower(fi.FontName)
	if strings.Contains(lower, "symbol") || strings.Contains(lower, "dingbat") {
		face.Charsets = []sysfont.Charset{sysfont.CharsetSymbol}
	}
	return face
}

// codePageCharsets maps bits of the OS/2 ulCodePageRange1 field to
// charsets.
var codePageCharsets = []struct {
	bit uint
	cs  sysfont.Charset
}{
	{0, sysfont.CharsetANSI},
	{1, sysfont.CharsetEasternEuropean},
	{2, sysfont.CharsetCyrillic},
	{3, sysfont.CharsetGreek},
	{5, sysfont.CharsetHebrew},
	{6, sysfont.CharsetArabic},
	{8, sysfont.CharsetVietnamese},
	{16, sysfont.CharsetThai},
	{17, sysfont.CharsetShiftJIS},
	{18, sysfont.CharsetGB2312},
	{19, sysfont.CharsetHangeul},
	{20, sysfont.CharsetChineseBig5},
	{31, sysfont.CharsetSymbol},
}

// charsetsFromCodePages converts an OS/2 code page range to a list of
// charsets.  If no known bit is set, the font is assumed to cover ANSI.
func charsetsFromCodePages(cpr uint64) []sysfont.Charset {
	var res []sysfont.Charset
	for _, e := range codePageCharsets {
		if cpr&(1<<e.bit) != 0 {
			res = append(res, e.cs)
		}
	}
	if len(res) == 0 {
		res = append(res, sysfont.CharsetANSI)
	}
	return res
}
