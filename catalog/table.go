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
	"errors"
	"io"

	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/sysfont"
)

// ErrNoTable is returned when a font file does not contain the requested
// table.
var ErrNoTable = errors.New("catalog: table not found")

// Range is the location of a table inside a font file.
type Range struct {
	Offset int64
	Length int64
}

// TableDirectory locates tables inside a font file.  The directory is
// read on first use.
type TableDirectory struct {
	blob Blob
	toc  map[string]header.Record
}

// NewTableDirectory returns a TableDirectory for the given font data.
func NewTableDirectory(b Blob) *TableDirectory {
	return &TableDirectory{blob: b}
}

// Find returns the location of the given table.  For sysfont.WholeFile,
// the range covers the complete file.
func (d *TableDirectory) Find(tag sysfont.Tag) (Range, error) {
	if tag == sysfont.WholeFile {
		return Range{Offset: 0, Length: d.blob.Size()}, nil
	}

	if d.toc == nil {
		info, err := header.Read(d.blob)
		if err != nil {
			return Range{}, &InvalidFontError{Reason: "cannot read table directory", Err: err}
		}
		d.toc = info.Toc
	}

	rec, ok := d.toc[tag.String()]
	if !ok {
		return Range{}, ErrNoTable
	}
	end := int64(rec.Offset) + int64(rec.Length)
	if end > d.blob.Size() {
		return Range{}, &InvalidFontError{Reason: "table " + tag.String() + " extends beyond end of file"}
	}
	return Range{Offset: int64(rec.Offset), Length: int64(rec.Length)}, nil
}

// ReadAt fills buf with the data in the given range.  buf must have
// length r.Length.
func (d *TableDirectory) ReadAt(buf []byte, r Range) error {
	n, err := d.blob.ReadAt(buf[:r.Length], r.Offset)
	if int64(n) == r.Length {
		// a complete read may come with io.EOF at the end of the file
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}
