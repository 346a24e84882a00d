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

package registry

import (
	"strings"

	"seehuhn.de/go/sysfont"
)

// InstalledFont is a font reported by a provider during enumeration.
type InstalledFont struct {
	FaceName string
	Charset  sysfont.Charset
}

// InstalledFonts collects the fonts reported by a provider.
// It implements sysfont.Mapper.
type InstalledFonts struct {
	fonts []InstalledFont
	seen  map[InstalledFont]bool
	names map[string][]sysfont.Charset
}

func newInstalledFonts() *InstalledFonts {
	return &InstalledFonts{
		seen:  make(map[InstalledFont]bool),
		names: make(map[string][]sysfont.Charset),
	}
}

// AddInstalledFont implements the sysfont.Mapper interface.
// Duplicate reports are ignored.
func (l *InstalledFonts) AddInstalledFont(face string, cs sysfont.Charset) {
	f := InstalledFont{FaceName: face, Charset: cs}
	if l.seen[f] {
		return
	}
	l.seen[f] = true
	l.fonts = append(l.fonts, f)
	key := nameKey(face)
	l.names[key] = append(l.names[key], cs)
}

// Len returns the number of distinct (face, charset) pairs.
func (l *InstalledFonts) Len() int {
	return len(l.fonts)
}

// List returns the installed fonts in the order they were reported.
func (l *InstalledFonts) List() []InstalledFont {
	res := make([]InstalledFont, len(l.fonts))
	copy(res, l.fonts)
	return res
}

// Has reports whether a font with the given face name was reported.
// Names are compared without regard to case and spacing.
func (l *InstalledFonts) Has(face string) bool {
	_, ok := l.names[nameKey(face)]
	return ok
}

// Supports reports whether a font with the given face name was reported
// for the charset cs.
func (l *InstalledFonts) Supports(face string, cs sysfont.Charset) bool {
	charsets, ok := l.names[nameKey(face)]
	if !ok {
		return false
	}
	if cs.AcceptsAny() {
		return true
	}
	for _, c := range charsets {
		if c == cs {
			return true
		}
	}
	return false
}

func nameKey(face string) string {
	return strings.ToLower(sysfont.NormalizeFaceName(face))
}
