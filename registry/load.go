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

// Font is the result of a font lookup.
type Font struct {
	// FaceName is the name of the selected font, as reported by the
	// provider.
	FaceName string

	// Charset is the charset of the selected font.
	Charset sysfont.Charset

	// Exact is true if the provider reported an exact match, or if the
	// font was found by its exact name and supports the requested
	// charset.
	Exact bool

	// Data holds the requested table, or the complete font file.
	Data []byte
}

// Load selects a font for desc using the active provider and returns the
// data of the given table.  Use sysfont.WholeFile to get the complete
// font file.
//
// For requests with normal weight and upright style, a face name which
// the provider listed during enumeration is first looked up without
// substitution, using the provider's GetFont method.  Otherwise, or if
// this fails, the provider's MapFont method is used.
// sysfont.ErrNotFound is returned if no font can be selected.
func (r *Registry) Load(desc *sysfont.Descriptor, table sysfont.Tag) (*Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked(desc, "", table)
}

// LoadBaseFont selects a font for a PDF BaseFont name like
// "ABCDEF+Arial,BoldItalic".  The name is first tried unchanged for an
// exact lookup, then the parsed family and style are matched.
func (r *Registry) LoadBaseFont(baseFont string, cs sysfont.Charset, table sysfont.Tag) (*Font, error) {
	bf := sysfont.ParseBaseFont(baseFont)
	desc := bf.Descriptor(cs)

	r.mu.Lock()
	defer r.mu.Unlock()

	lookup := strings.TrimSpace(baseFont)
	if bf.SubsetTag != "" {
		lookup = lookup[len(bf.SubsetTag)+1:]
	}
	return r.loadLocked(desc, lookup, table)
}

func (r *Registry) loadLocked(desc *sysfont.Descriptor, raw string, table sysfont.Tag) (*Font, error) {
	p := r.currentLocked()

	names := make([]string, 0, 2)
	if raw != "" {
		names = append(names, raw)
	}
	// A plain family name would find the regular face only.
	plain := (desc.Weight == 0 || desc.Weight == sysfont.WeightNormal) && !desc.Italic
	if plain && desc.FaceName != raw && r.installed.Has(desc.FaceName) {
		names = append(names, desc.FaceName)
	}

	h := sysfont.NoHandle
	exact := false
	for _, name := range names {
		h = sysfont.GetFont(p, name)
		if h != sysfont.NoHandle {
			cs := sysfont.GetFontCharset(p, h)
			exact = desc.Charset.AcceptsAny() || cs == desc.Charset ||
				r.installed.Supports(name, desc.Charset)
			break
		}
	}
	if h == sysfont.NoHandle {
		m := p.MapFont(desc)
		if !m.Found() {
			return nil, sysfont.ErrNotFound
		}
		h = m.Handle
		exact = m.Exact
	}
	defer p.DeleteFont(h)

	data, err := sysfont.ReadFontData(p, h, table)
	if err != nil {
		return nil, err
	}

	res := &Font{
		FaceName: sysfont.FaceName(p, h),
		Charset:  sysfont.GetFontCharset(p, h),
		Exact:    exact,
		Data:     data,
	}
	sysfont.Logger().Debug("font loaded",
		"request", desc.String(),
		"face", res.FaceName,
		"exact", res.Exact,
		"table", table.String(),
		"size", len(data))
	return res, nil
}
