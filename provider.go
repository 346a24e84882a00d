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

// InterfaceVersion is the version of the Provider interface described in
// this package.  Providers must report this value from Version.
const InterfaceVersion = 1

// A Provider gives access to fonts installed on the host system.  It is
// used when a document refers to a font which is not embedded.
//
// Unless an implementation documents otherwise, a Provider must not be
// used concurrently from more than one goroutine.
//
// Optional functionality is exposed through the Enumerator, FontGetter,
// FaceNamer and CharsetReporter interfaces.  Use the package-level
// functions of the same names to call them.
type Provider interface {
	// Version returns the interface version implemented by the provider.
	// Currently this must be 1.
	Version() int

	// Release frees all resources held by the provider.  No other method
	// may be called afterwards.
	Release()

	// MapFont selects the font which best matches the descriptor.  If the
	// provider has any font at all, a usable handle is returned.
	// Otherwise the result contains NoHandle.
	MapFont(desc *Descriptor) MatchResult

	// GetFontData copies font data into buf.  If table is WholeFile, the
	// complete font file is copied, otherwise only the given table.
	//
	// If buf is too small to hold the data, nothing is written and the
	// number of bytes needed is returned.  Otherwise the data is written
	// to the start of buf and the number of bytes written is returned.
	// A return value of 0 means that no data is available.
	GetFontData(h Handle, table Tag, buf []byte) int

	// DeleteFont releases a handle returned by MapFont or GetFont.
	DeleteFont(h Handle)
}

// Mapper collects the names of installed fonts.
type Mapper interface {
	AddInstalledFont(face string, cs Charset)
}

// Enumerator is implemented by providers which can list their fonts.
type Enumerator interface {
	// EnumFonts calls m.AddInstalledFont once for every installed font
	// and charset.
	EnumFonts(m Mapper)
}

// FontGetter is implemented by providers which support exact face name
// lookups.
type FontGetter interface {
	// GetFont returns the font with the given face name, or NoHandle if
	// there is no such font.  No substitution is performed.
	GetFont(face string) Handle
}

// FaceNamer is implemented by providers which can report the face name
// of an open font.
type FaceNamer interface {
	// GetFaceName copies the face name, followed by a zero byte, into
	// buf.  The return value follows the same conventions as for
	// Provider.GetFontData.
	GetFaceName(h Handle, buf []byte) int
}

// CharsetReporter is implemented by providers which can report the
// charset of an open font.
type CharsetReporter interface {
	GetFontCharset(h Handle) Charset
}

// EnumFonts lists the fonts of p into m.  If p does not implement
// Enumerator, nothing happens.
func EnumFonts(p Provider, m Mapper) {
	if e, ok := p.(Enumerator); ok {
		e.EnumFonts(m)
	}
}

// GetFont looks up a font by exact face name.  If p does not implement
// FontGetter, NoHandle is returned.
func GetFont(p Provider, face string) Handle {
	if g, ok := p.(FontGetter); ok {
		return g.GetFont(face)
	}
	return NoHandle
}

// GetFaceName calls the GetFaceName method of p, if available.
// Otherwise 0 is returned.
func GetFaceName(p Provider, h Handle, buf []byte) int {
	if n, ok := p.(FaceNamer); ok {
		return n.GetFaceName(h, buf)
	}
	return 0
}

// GetFontCharset returns the charset of the font, or CharsetDefault if p
// does not implement CharsetReporter.
func GetFontCharset(p Provider, h Handle) Charset {
	if r, ok := p.(CharsetReporter); ok {
		return r.GetFontCharset(h)
	}
	return CharsetDefault
}
