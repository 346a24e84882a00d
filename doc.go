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

// Package sysfont resolves fonts which are referenced by a document but
// not embedded in it.
//
// A [Provider] gives access to the fonts installed on the host.  The
// renderer describes the font it needs by a [Descriptor], asks the
// provider for the best match using [Provider.MapFont] (or for a font
// with an exact face name using [GetFont]), and then reads the font
// program, or a single table of it, using [Provider.GetFontData].
// Handles must be released using [Provider.DeleteFont].
//
// # Reading font data
//
// GetFontData uses a two-phase protocol: a first call with a nil buffer
// returns the number of bytes needed, a second call with a buffer of
// this size fills the buffer.  [ReadFontData] implements this pattern.
// Providers can use [CopyOut] to implement their side of the protocol.
//
// # Implementations
//
// The package [seehuhn.de/go/sysfont/match] contains a portable provider
// which selects fonts from a [seehuhn.de/go/sysfont/catalog.Catalog].
// The package [seehuhn.de/go/sysfont/registry] manages the provider
// used by a renderer.
//
// # Fallback fonts
//
// [DefaultTTFMap] lists a canonical font family for each script-specific
// charset.  It is used when no installed font supports the requested
// charset.
package sysfont
