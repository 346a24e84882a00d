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
	"strings"

	"github.com/xdg-go/stringprep"
)

// BaseFont is the result of splitting a PDF font name into its parts.
type BaseFont struct {
	SubsetTag string // six upper case letters, or empty
	Family    string
	Style     string // style suffix as found in the name, e.g. "BoldItalic"
	Weight    int
	Italic    bool
}

// ParseBaseFont splits a font name as found in the /BaseFont entry of a
// PDF font dictionary.  Names like "ABCDEF+Arial,Bold",
// "TimesNewRomanPS-BoldItalicMT" and "Helvetica-Oblique" are understood.
// The weight defaults to WeightNormal if the name does not indicate a
// weight.
func ParseBaseFont(name string) BaseFont {
	res := BaseFont{Weight: WeightNormal}

	name = strings.TrimSpace(name)
	if isSubsetTag(name) {
		res.SubsetTag = name[:6]
		name = name[7:]
	}

	family, style := name, ""
	if idx := strings.IndexByte(name, ','); idx >= 0 {
		family, style = name[:idx], name[idx+1:]
	} else if idx := strings.LastIndexByte(name, '-'); idx > 0 {
		suffix := trimVendor(name[idx+1:])
		if _, _, ok := parseStyle(suffix); ok {
			family, style = name[:idx], name[idx+1:]
		}
	}

	family = trimVendor(family)
	style = trimVendor(style)
	if w, italic, ok := parseStyle(style); ok {
		res.Weight = w
		res.Italic = italic
	}

	res.Family = strings.TrimSpace(family)
	res.Style = style
	return res
}

// Descriptor returns a font request for the parsed name.
func (b BaseFont) Descriptor(cs Charset) *Descriptor {
	return &Descriptor{
		Weight:   b.Weight,
		Italic:   b.Italic,
		Charset:  cs,
		FaceName: b.Family,
	}
}

func isSubsetTag(name string) bool {
	if len(name) < 8 || name[6] != '+' {
		return false
	}
	for i := 0; i < 6; i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			return false
		}
	}
	return true
}

// trimVendor removes the "MT" and "PS" suffixes which Monotype and Adobe
// append to PostScript names.
func trimVendor(s string) string {
	for _, suffix := range []string{"MT", "PS"} {
		if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			s = s[:len(s)-len(suffix)]
		}
	}
	return s
}

var styleWeights = []struct {
	word   string
	weight int
}{
	// longer words first, so that "semibold" is not taken for "bold"
	{"extralight", 200},
	{"ultralight", 200},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"regular", WeightNormal},
	{"roman", WeightNormal},
	{"normal", WeightNormal},
	{"book", WeightNormal},
	{"medium", 500},
	{"light", 300},
	{"black", 900},
	{"heavy", 900},
	{"thin", 100},
	{"bold", WeightBold},
	{"demi", 600},
}

// parseStyle interprets a style suffix like "BoldItalic".  The last return
// value is false if s contains anything which is not a style word.
func parseStyle(s string) (weight int, italic bool, ok bool) {
	weight = WeightNormal
	rest := strings.ToLower(s)
	if rest == "" {
		return weight, false, false
	}
	weightSeen := false
outer:
	for rest != "" {
		for _, slant := range []string{"italic", "oblique", "it"} {
			if strings.HasPrefix(rest, slant) {
				italic = true
				rest = rest[len(slant):]
				continue outer
			}
		}
		for _, sw := range styleWeights {
			if strings.HasPrefix(rest, sw.word) {
				if !weightSeen {
					weight = sw.weight
					weightSeen = true
				}
				rest = rest[len(sw.word):]
				continue outer
			}
		}
		if rest[0] == ' ' || rest[0] == ',' || rest[0] == '-' {
			rest = rest[1:]
			continue
		}
		return WeightNormal, false, false
	}
	return weight, italic, true
}

// NormalizeFaceName prepares a face name for comparison.  Full-width
// forms and compatibility characters are mapped to their canonical
// equivalents, unusual space characters are replaced by ASCII spaces,
// and runs of white space are collapsed.
func NormalizeFaceName(name string) string {
	prepped, err := stringprep.SASLprep.Prepare(name)
	if err != nil {
		prepped = name
	}
	return strings.Join(strings.Fields(prepped), " ")
}
