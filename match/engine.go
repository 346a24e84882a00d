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

// Package match implements a portable font provider.
//
// The [Engine] selects fonts from a fixed list of faces, typically taken
// from a [catalog.Catalog].  For every request, each face is scored
// against the requested face name, charset, weight, italic flag and
// pitch and family flags, and the face with the best score is returned.
// If no face supports the requested charset, the charset font table
// (see [sysfont.DefaultTTFMap]) is used to find a replacement family.
package match

import (
	"sync"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/sysfont"
	"seehuhn.de/go/sysfont/catalog"
	"seehuhn.de/go/sysfont/gofont"
)

// A Source supplies the faces available to an Engine.
// A *catalog.Catalog can be used as a Source.
type Source interface {
	Faces() []*catalog.Face
}

// FaceList is a Source which holds a fixed list of faces.
type FaceList []*catalog.Face

// Faces implements the Source interface.
func (l FaceList) Faces() []*catalog.Face {
	return l
}

// Options allows to customize an Engine.
type Options struct {
	// DefaultFace is used if the source contains no faces at all.
	DefaultFace *catalog.Face

	// NoDefaultFace disables the default face.  If set, MapFont returns
	// sysfont.NoHandle when the source contains no faces.
	NoDefaultFace bool

	// Table maps charsets to fallback font names.  It must be terminated
	// by an entry with Charset -1.
	Table []sysfont.CharsetFont

	// Aliases lists additional groups of interchangeable family names.
	Aliases [][]string
}

// DefaultOptions returns the options used when nil is passed to New.
// The default face is Go Regular.
func DefaultOptions() *Options {
	opt := &Options{
		Table: sysfont.DefaultTTFMap(),
	}
	face, err := gofont.Regular.Face()
	if err == nil {
		opt.DefaultFace = face
	}
	return opt
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from
// opt, except for the fields which are set to the zero value in opt.
// opt can be nil in which case the default values are returned.
// defaultValues must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{
		NoDefaultFace: opt.NoDefaultFace,
	}
	if opt.DefaultFace != nil {
		res.DefaultFace = opt.DefaultFace
	} else {
		res.DefaultFace = defaultValues.DefaultFace
	}
	if opt.Table != nil {
		res.Table = opt.Table
	} else {
		res.Table = defaultValues.Table
	}
	res.Aliases = append(res.Aliases, defaultValues.Aliases...)
	res.Aliases = append(res.Aliases, opt.Aliases...)
	return res
}

// Engine is a sysfont.Provider which selects fonts from a list of faces.
// The list is captured when the Engine is created.
//
// An Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	mu sync.Mutex

	faces       []*catalog.Face
	defaultFace *catalog.Face
	table       []sysfont.CharsetFont
	aliases     aliasTable

	open     map[sysfont.Handle]*openFont
	next     sysfont.Handle
	released bool
}

var (
	_ sysfont.Provider        = (*Engine)(nil)
	_ sysfont.Enumerator      = (*Engine)(nil)
	_ sysfont.FontGetter      = (*Engine)(nil)
	_ sysfont.FaceNamer       = (*Engine)(nil)
	_ sysfont.CharsetReporter = (*Engine)(nil)
)

type openFont struct {
	face    *catalog.Face
	charset sysfont.Charset

	// blob and dir are set on first data access
	blob catalog.Blob
	dir  *catalog.TableDirectory
}

// New creates an Engine for the faces in src.  If opt is nil, the
// values from DefaultOptions are used.
func New(src Source, opt *Options) *Engine {
	opt = MergeOptions(opt, DefaultOptions())
	defaultFace := opt.DefaultFace
	if opt.NoDefaultFace {
		defaultFace = nil
	}

	var faces []*catalog.Face
	if src != nil {
		faces = slices.Clone(src.Faces())
	}

	e := &Engine{
		faces:       faces,
		defaultFace: defaultFace,
		table:       opt.Table,
		aliases:     newAliasTable(defaultAliases, opt.Aliases),
		open:        make(map[sysfont.Handle]*openFont),
	}
	sysfont.Logger().Debug("font engine created", "faces", len(faces))
	return e
}

// Version implements the sysfont.Provider interface.
func (e *Engine) Version() int {
	return sysfont.InterfaceVersion
}

// Release closes all open fonts.
// This implements the sysfont.Provider interface.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for h, f := range e.open {
		f.close()
		delete(e.open, h)
	}
	e.released = true
}

// EnumFonts reports every face and charset to m.
// This implements the sysfont.Enumerator interface.
func (e *Engine) EnumFonts(m sysfont.Mapper) {
	e.mu.Lock()
	faces := e.faces
	e.mu.Unlock()

	for _, f := range faces {
		for _, cs := range f.Charsets {
			m.AddInstalledFont(f.Name, cs)
		}
	}
}

// MapFont selects the best face for the request.
// This implements the sysfont.Provider interface.
func (e *Engine) MapFont(desc *sysfont.Descriptor) sysfont.MatchResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.released {
		return sysfont.MatchResult{}
	}

	sel := e.selectFace(desc)
	if !sel.found {
		if e.defaultFace == nil {
			sysfont.Logger().Debug("no font available", "request", desc)
			return sysfont.MatchResult{}
		}
		sysfont.Logger().Debug("using default face",
			"request", desc, "face", e.defaultFace.Name)
		cs := e.defaultFace.Charset()
		if e.defaultFace.HasCharset(desc.Charset) {
			cs = desc.Charset
		}
		h := e.alloc(e.defaultFace, cs)
		return sysfont.MatchResult{Handle: h}
	}

	exact := sel.isExact(desc)
	cs := desc.Charset
	if !sel.charsetOK || cs.AcceptsAny() {
		cs = sel.cand.Face.Charset()
	}
	h := e.alloc(sel.cand.Face, cs)

	sysfont.Logger().Debug("font mapped",
		"request", desc,
		"face", sel.cand.Face.Name,
		"name", sel.cand.Name,
		"fallback", sel.fallback,
		"exact", exact)
	return sysfont.MatchResult{Handle: h, Exact: exact}
}

// GetFont returns the face with the given name.  Both the face name and
// the PostScript name are compared, without any normalization.
// This implements the sysfont.FontGetter interface.
func (e *Engine) GetFont(name string) sysfont.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.released || name == "" {
		return sysfont.NoHandle
	}
	for _, f := range e.faces {
		if f.Name == name || f.PostScriptName == name {
			return e.alloc(f, f.Charset())
		}
	}
	return sysfont.NoHandle
}

// GetFontData copies a font table, or the whole font file, into buf.
// This implements the sysfont.Provider interface.
func (e *Engine) GetFontData(h sysfont.Handle, table sysfont.Tag, buf []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.open[h]
	if f == nil {
		return 0
	}

	if f.dir == nil {
		blob, err := f.face.Open()
		if err != nil {
			sysfont.Logger().Debug("cannot open font", "face", f.face.Name, "error", err)
			return 0
		}
		f.blob = blob
		f.dir = catalog.NewTableDirectory(blob)
	}

	r, err := f.dir.Find(table)
	if err != nil {
		sysfont.Logger().Debug("font data not available",
			"face", f.face.Name, "table", table, "error", err)
		return 0
	}
	n := int(r.Length)
	if n <= 0 || len(buf) < n {
		return n
	}

	err = f.dir.ReadAt(buf[:n], r)
	if err != nil {
		sysfont.Logger().Debug("cannot read font data",
			"face", f.face.Name, "table", table, "error", err)
		return 0
	}
	return n
}

// GetFaceName copies the face name, followed by a zero byte, into buf.
// This implements the sysfont.FaceNamer interface.
func (e *Engine) GetFaceName(h sysfont.Handle, buf []byte) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.open[h]
	if f == nil {
		return 0
	}
	return sysfont.CopyName(buf, f.face.Name)
}

// GetFontCharset returns the charset of an open font.  For fonts
// returned by MapFont, this is the requested charset if the font
// supports it.
// This implements the sysfont.CharsetReporter interface.
func (e *Engine) GetFontCharset(h sysfont.Handle) sysfont.Charset {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.open[h]
	if f == nil {
		return sysfont.CharsetDefault
	}
	return f.charset
}

// DeleteFont closes an open font.
// This implements the sysfont.Provider interface.
func (e *Engine) DeleteFont(h sysfont.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.open[h]
	if f == nil {
		return
	}
	f.close()
	delete(e.open, h)
}

// NumOpen returns the number of handles which have not been deleted.
func (e *Engine) NumOpen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.open)
}

// alloc registers a new open font.  Handles are never reused.
// The caller must hold e.mu.
func (e *Engine) alloc(face *catalog.Face, cs sysfont.Charset) sysfont.Handle {
	e.next++
	h := e.next
	e.open[h] = &openFont{face: face, charset: cs}
	return h
}

func (f *openFont) close() {
	if f.blob != nil {
		f.blob.Close()
		f.blob = nil
		f.dir = nil
	}
}
