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

// Package gofont provides the Go font family as catalog faces.
//
// The Go fonts are compiled into the binary.  They are used as the last
// resort when no installed font can be found.
package gofont

import (
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/sysfont/catalog"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular         Font = iota // Go Regular
	Bold                        // Go Bold
	BoldItalic                  // Go Bold Italic
	Italic                      // Go Italic
	Medium                      // Go Medium
	MediumItalic                // Go Medium Italic
	Smallcaps                   // Go Smallcaps
	SmallcapsItalic             // Go Smallcaps Italic
	Mono                        // Go Mono
	MonoBold                    // Go Mono Bold
	MonoBoldItalic              // Go Mono Bold Italic
	MonoItalic                  // Go Mono Italic
)

// TTF returns the font file.
func (f Font) TTF() []byte {
	return ttf[f]
}

// Face returns a catalog entry for the font.
func (f Font) Face() (*catalog.Face, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	face, err := catalog.NewFace(data)
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return face, nil
}

// Faces returns catalog entries for all fonts in the Go font family,
// in the order given by All.
func Faces() ([]*catalog.Face, error) {
	res := make([]*catalog.Face, 0, len(All))
	for _, f := range All {
		face, err := f.Face()
		if err != nil {
			return nil, err
		}
		res = append(res, face)
	}
	return res, nil
}

var ttf = map[Font][]byte{
	Bold:            gobold.TTF,
	BoldItalic:      gobolditalic.TTF,
	Italic:          goitalic.TTF,
	Medium:          gomedium.TTF,
	MediumItalic:    gomediumitalic.TTF,
	Regular:         goregular.TTF,
	Smallcaps:       gosmallcaps.TTF,
	SmallcapsItalic: gosmallcapsitalic.TTF,
	Mono:            gomono.TTF,
	MonoBold:        gomonobold.TTF,
	MonoBoldItalic:  gomonobolditalic.TTF,
	MonoItalic:      gomonoitalic.TTF,
}

// All contains all the Go font family fonts available in this package.
// Regular comes first, so that it wins ties when fonts are matched.
var All = []Font{
	Regular,
	Bold,
	BoldItalic,
	Italic,
	Medium,
	MediumItalic,
	Smallcaps,
	SmallcapsItalic,
	Mono,
	MonoBold,
	MonoBoldItalic,
	MonoItalic,
}
