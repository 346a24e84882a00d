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
	"fmt"
	"strings"
)

// Typical font weights.  Other values are legal; a request for weight w
// prefers fonts with weights close to w.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// PitchFamily holds the pitch and family flags of a font request, using
// the bit layout of the Windows LOGFONT lfPitchAndFamily field.
type PitchFamily uint8

// Possible values for the pitch and family flags.
const (
	FixedPitch PitchFamily = 1 << 0 // All glyphs have the same width.
	Roman      PitchFamily = 1 << 4 // Proportional font with serifs.
	Script     PitchFamily = 4 << 4 // Glyphs resemble cursive handwriting.

	familyMask PitchFamily = 0xF0
)

// IsFixedPitch reports whether the fixed-pitch flag is set.
func (pf PitchFamily) IsFixedPitch() bool {
	return pf&FixedPitch != 0
}

// Family returns the family classification (the upper four bits).
func (pf PitchFamily) Family() PitchFamily {
	return pf & familyMask
}

func (pf PitchFamily) String() string {
	var parts []string
	if pf.IsFixedPitch() {
		parts = append(parts, "FixedPitch")
	}
	switch pf.Family() {
	case 0:
		// no family
	case Roman:
		parts = append(parts, "Roman")
	case Script:
		parts = append(parts, "Script")
	default:
		parts = append(parts, fmt.Sprintf("Family(%d)", pf.Family()>>4))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// Descriptor describes a requested font.
type Descriptor struct {
	// Weight is the requested weight, typically 100 to 900.
	Weight int

	Italic bool

	Charset Charset

	PitchFamily PitchFamily

	// FaceName is the requested family or face name.  It may be partial
	// or an alias.  The empty string leaves the face unspecified.
	FaceName string
}

func (d *Descriptor) String() string {
	style := "upright"
	if d.Italic {
		style = "italic"
	}
	return fmt.Sprintf("%q %d %s %s %s", d.FaceName, d.Weight, style, d.Charset, d.PitchFamily)
}

// Handle identifies an open font.  Handles are issued by a Provider and
// are only meaningful to the provider which issued them.
type Handle uint64

// NoHandle is returned when no font could be found.
const NoHandle Handle = 0

// MatchResult is the outcome of Provider.MapFont.
type MatchResult struct {
	Handle Handle

	// Exact is true if face name, weight, italic flag and charset of the
	// selected font all match the request.  Otherwise the font is a
	// substitute.
	Exact bool
}

// Found reports whether the result refers to a font.
func (m MatchResult) Found() bool {
	return m.Handle != NoHandle
}
