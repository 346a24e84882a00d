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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/sysfont"
)

// Face describes one installed font.
//
// Faces are not modified after they have been added to a Catalog.
type Face struct {
	// Name is the face name reported to callers, e.g. "Arial Bold".
	Name string

	// Family is the family name, e.g. "Arial".
	Family string

	PostScriptName string

	Weight os2.Weight
	Italic bool

	PitchFamily sysfont.PitchFamily

	// Charsets lists the charsets supported by the font, in order of
	// preference.  The list is never empty for faces created by this
	// package.
	Charsets []sysfont.Charset

	// Path is the location of the font file, or empty for fonts held in
	// memory.
	Path string

	open func() (Blob, error)
}

// A Blob gives random access to the data of a font file.
type Blob interface {
	io.ReaderAt
	io.Closer
	Size() int64
}

type memBlob struct {
	*bytes.Reader
}

func (memBlob) Close() error { return nil }

type fileBlob struct {
	*os.File
	size int64
}

func (b *fileBlob) Size() int64 { return b.size }

func openFile(path string) (Blob, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}
	return &fileBlob{File: fd, size: fi.Size()}, nil
}

// Open gives access to the font file.  The returned Blob must be closed
// by the caller.
func (f *Face) Open() (Blob, error) {
	if f.open == nil {
		return nil, fmt.Errorf("catalog: no data for %q", f.Name)
	}
	return f.open()
}

// HasCharset reports whether the font supports the given charset.
func (f *Face) HasCharset(cs sysfont.Charset) bool {
	return slices.Contains(f.Charsets, cs)
}

// Charset returns the preferred charset of the font.
func (f *Face) Charset() sysfont.Charset {
	if len(f.Charsets) == 0 {
		return sysfont.CharsetANSI
	}
	return f.Charsets[0]
}

// Clone returns a shallow copy of f which can be modified before it is
// added to a catalog.  The copy shares the font data with f.
func (f *Face) Clone() *Face {
	res := *f
	res.Charsets = slices.Clone(f.Charsets)
	return &res
}

func (f *Face) String() string {
	return fmt.Sprintf("%s (%s, %d, italic=%t, %s)",
		f.Name, f.Family, f.Weight, f.Italic, f.PitchFamily)
}

// NewFace creates a Face for a TrueType or OpenType font held in memory.
// The data must not be modified after the call.
func NewFace(data []byte) (*Face, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidFontError{Reason: "cannot parse font", Err: err}
	}
	face := fromSfnt(info)
	face.open = func() (Blob, error) {
		return memBlob{bytes.NewReader(data)}, nil
	}
	return face, nil
}

// ReadFile creates a Face for the font file at path.  TrueType and
// OpenType fonts (".ttf", ".otf") and Type 1 fonts (".pfa", ".pfb") are
// supported.  The file is kept on disk and re-opened whenever the font
// data is accessed.
func ReadFile(path string) (*Face, error) {
	var face *Face
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		info, err := sfnt.Read(fd)
		fd.Close()
		if err != nil {
			return nil, &InvalidFontError{Path: path, Reason: "cannot parse font", Err: err}
		}
		face = fromSfnt(info)
	case ".pfa", ".pfb":
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		psFont, err := type1.Read(fd)
		fd.Close()
		if err != nil {
			return nil, &InvalidFontError{Path: path, Reason: "cannot parse font", Err: err}
		}
		face = fromType1(psFont)
	default:
		return nil, &InvalidFontError{Path: path, Reason: "unsupported file type"}
	}
	if face.Name == "" {
		return nil, &InvalidFontError{Path: path, Reason: "missing font name"}
	}

	face.Path = path
	face.open = func() (Blob, error) {
		return openFile(path)
	}
	return face, nil
}
