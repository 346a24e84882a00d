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
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sysfont"
)

func TestTableDirectory(t *testing.T) {
	d := NewTableDirectory(memBlob{bytes.NewReader(goregular.TTF)})

	r, err := d.Find(sysfont.WholeFile)
	if err != nil {
		t.Fatal(err)
	}
	if r.Offset != 0 || r.Length != int64(len(goregular.TTF)) {
		t.Errorf("whole file: got %v", r)
	}

	r, err = d.Find(sysfont.MakeTag("head"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Length != 54 {
		t.Errorf("head table: got length %d, want 54", r.Length)
	}
	buf := make([]byte, r.Length)
	err = d.ReadAt(buf, r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, goregular.TTF[r.Offset:r.Offset+r.Length]) {
		t.Error("wrong table data")
	}

	_, err = d.Find(sysfont.MakeTag("zzzz"))
	if !errors.Is(err, ErrNoTable) {
		t.Errorf("missing table: got %v, want %v", err, ErrNoTable)
	}
}

// readTable returns the contents of a table, or of the complete file if
// tag is sysfont.WholeFile.
func readTable(b Blob, tag sysfont.Tag) ([]byte, error) {
	d := NewTableDirectory(b)
	r, err := d.Find(tag)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, r.Length)
	err = d.ReadAt(buf, r)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func TestTableDirectoryInvalid(t *testing.T) {
	d := NewTableDirectory(memBlob{bytes.NewReader([]byte("not a font file"))})

	_, err := d.Find(sysfont.MakeTag("head"))
	var fontErr *InvalidFontError
	if !errors.As(err, &fontErr) {
		t.Errorf("got %v, want an InvalidFontError", err)
	}

	err = d.ReadAt(make([]byte, 100), Range{Offset: 10, Length: 100})
	if err == nil {
		t.Error("short read not detected")
	}
}

func TestCharsetsFromCodePages(t *testing.T) {
	cases := []struct {
		cpr  uint64
		want []sysfont.Charset
	}{
		{0, []sysfont.Charset{sysfont.CharsetANSI}},
		{1, []sysfont.Charset{sysfont.CharsetANSI}},
		{1<<18 | 1, []sysfont.Charset{sysfont.CharsetANSI, sysfont.CharsetGB2312}},
		{1 << 4, []sysfont.Charset{sysfont.CharsetANSI}},
		{1 << 31, []sysfont.Charset{sysfont.CharsetSymbol}},
		{1<<2 | 1<<3 | 1<<17, []sysfont.Charset{sysfont.CharsetCyrillic, sysfont.CharsetGreek, sysfont.CharsetShiftJIS}},
	}
	for _, c := range cases {
		got := charsetsFromCodePages(c.cpr)
		if len(got) != len(c.want) {
			t.Errorf("0x%x: got %v, want %v", c.cpr, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("0x%x: got %v, want %v", c.cpr, got, c.want)
				break
			}
		}
	}
}
