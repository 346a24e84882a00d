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

package match

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/sysfont"
	"seehuhn.de/go/sysfont/catalog"
	"seehuhn.de/go/sysfont/gofont"
)

// makeFace returns a face which uses the Go Regular font data, but
// reports the given names and attributes.
func makeFace(t *testing.T, family, style string, weight int, italic bool, cs ...sysfont.Charset) *catalog.Face {
	t.Helper()

	base, err := gofont.Regular.Face()
	if err != nil {
		t.Fatal(err)
	}
	face := base.Clone()
	face.Family = family
	face.Name = family
	if style != "" {
		face.Name += " " + style
	}
	face.PostScriptName = ""
	face.Weight = os2.Weight(weight)
	face.Italic = italic
	face.PitchFamily = 0
	face.Charsets = cs
	return face
}

func arialFaces(t *testing.T) FaceList {
	t.Helper()
	regular := makeFace(t, "Arial", "", 400, false, sysfont.CharsetANSI)
	regular.PostScriptName = "ArialMT"
	bold := makeFace(t, "Arial", "Bold", 700, false, sysfont.CharsetANSI)
	bold.PostScriptName = "Arial-BoldMT"
	return FaceList{regular, bold}
}

func faceName(t *testing.T, e *Engine, h sysfont.Handle) string {
	t.Helper()
	return sysfont.FaceName(e, h)
}

func TestMapFontExact(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	desc := &sysfont.Descriptor{
		Weight:   700,
		Charset:  sysfont.CharsetANSI,
		FaceName: "Arial",
	}
	m := e.MapFont(desc)
	if !m.Found() {
		t.Fatal("no font found")
	}
	if !m.Exact {
		t.Error("exact match not reported")
	}
	if got := faceName(t, e, m.Handle); got != "Arial Bold" {
		t.Errorf("got %q, want %q", got, "Arial Bold")
	}
	if cs := e.GetFontCharset(m.Handle); cs != sysfont.CharsetANSI {
		t.Errorf("charset: got %s, want ANSI", cs)
	}
}

func TestMapFontSubstitute(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	cases := []struct {
		desc sysfont.Descriptor
		want string
	}{
		{sysfont.Descriptor{Weight: 700, Italic: true, Charset: sysfont.CharsetANSI, FaceName: "Arial"}, "Arial Bold"},
		{sysfont.Descriptor{Weight: 600, Charset: sysfont.CharsetANSI, FaceName: "Arial"}, "Arial Bold"},
		{sysfont.Descriptor{Weight: 300, Charset: sysfont.CharsetANSI, FaceName: "Arial"}, "Arial"},
		{sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI, FaceName: "arial"}, "Arial"},
		{sysfont.Descriptor{Weight: 700, Charset: sysfont.CharsetANSI, FaceName: "Arial,Bold"}, "Arial Bold"},
		{sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI, FaceName: "Helvetica"}, "Arial"},
		{sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI, FaceName: "Unknown Font"}, "Arial"},
		{sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI}, "Arial"},
	}
	for i, c := range cases {
		m := e.MapFont(&c.desc)
		if !m.Found() {
			t.Errorf("%d: no font found", i)
			continue
		}
		if m.Exact {
			t.Errorf("%d: substitute reported as exact match", i)
		}
		if got := faceName(t, e, m.Handle); got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
		e.DeleteFont(m.Handle)
	}
}

func TestMapFontZeroWeight(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Charset: sysfont.CharsetANSI, FaceName: "Arial"})
	if !m.Exact {
		t.Error("weight 0 does not match a regular font")
	}
	if got := faceName(t, e, m.Handle); got != "Arial" {
		t.Errorf("got %q, want %q", got, "Arial")
	}
}

func TestMapFontDefaultCharset(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	for _, cs := range []sysfont.Charset{sysfont.CharsetDefault, sysfont.CharsetSymbol} {
		m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: cs, FaceName: "Arial"})
		if !m.Exact {
			t.Errorf("%s: exact match not reported", cs)
		}
		if got := e.GetFontCharset(m.Handle); got != sysfont.CharsetANSI {
			t.Errorf("%s: charset: got %s, want ANSI", cs, got)
		}
	}
}

func TestCharsetFallback(t *testing.T) {
	simSun := makeFace(t, "SimSun", "", 400, false, sysfont.CharsetANSI)
	arial := makeFace(t, "Arial", "", 400, false, sysfont.CharsetANSI)
	e := New(FaceList{arial, simSun}, nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetGB2312})
	if !m.Found() {
		t.Fatal("no font found")
	}
	if m.Exact {
		t.Error("fallback font reported as exact match")
	}
	if got := faceName(t, e, m.Handle); got != "SimSun" {
		t.Errorf("got %q, want %q", got, "SimSun")
	}
	if cs := e.GetFontCharset(m.Handle); cs != sysfont.CharsetANSI {
		t.Errorf("charset: got %s, want ANSI", cs)
	}
}

func TestCharsetSupported(t *testing.T) {
	simSun := makeFace(t, "SimSun", "", 400, false, sysfont.CharsetGB2312, sysfont.CharsetANSI)
	arial := makeFace(t, "Arial", "", 400, false, sysfont.CharsetANSI)
	e := New(FaceList{arial, simSun}, nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetGB2312, FaceName: "Arial"})
	if m.Exact {
		t.Error("wrong face reported as exact match")
	}
	if got := faceName(t, e, m.Handle); got != "SimSun" {
		t.Errorf("got %q, want %q", got, "SimSun")
	}
	if cs := e.GetFontCharset(m.Handle); cs != sysfont.CharsetGB2312 {
		t.Errorf("charset: got %s, want GB2312", cs)
	}

	m = e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetGB2312, FaceName: "SimSun"})
	if !m.Exact {
		t.Error("exact match not reported")
	}
}

func TestCharsetNoFallback(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetGB2312})
	if !m.Found() {
		t.Fatal("no font found")
	}
	if m.Exact {
		t.Error("substitute reported as exact match")
	}
	if got := faceName(t, e, m.Handle); got != "Arial" {
		t.Errorf("got %q, want %q", got, "Arial")
	}
}

func TestEmptySource(t *testing.T) {
	e := New(nil, nil)
	defer e.Release()

	regular, err := gofont.Regular.Face()
	if err != nil {
		t.Fatal(err)
	}

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetGB2312, FaceName: "SimSun"})
	if !m.Found() {
		t.Fatal("default face not used")
	}
	if m.Exact {
		t.Error("default face reported as exact match")
	}
	if got := faceName(t, e, m.Handle); got != regular.Name {
		t.Errorf("got %q, want %q", got, regular.Name)
	}
	if got := e.GetFontCharset(m.Handle); got != regular.Charset() {
		t.Errorf("default face reports charset %d, want %d", got, regular.Charset())
	}

	// A charset the default face supports is kept.
	if !regular.HasCharset(sysfont.CharsetCyrillic) {
		t.Fatal("Go Regular lacks Cyrillic")
	}
	m = e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetCyrillic, FaceName: "Missing"})
	if got := e.GetFontCharset(m.Handle); got != sysfont.CharsetCyrillic {
		t.Errorf("default face reports charset %d, want %d", got, sysfont.CharsetCyrillic)
	}

	e2 := New(nil, &Options{NoDefaultFace: true})
	defer e2.Release()
	m = e2.MapFont(&sysfont.Descriptor{Weight: 400, FaceName: "Arial"})
	if m.Found() {
		t.Error("font found in empty engine")
	}
}

func TestSourceModifiedAfterNew(t *testing.T) {
	faces := arialFaces(t)
	e := New(faces, &Options{NoDefaultFace: true})
	defer e.Release()

	desc := &sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI, FaceName: "Arial"}
	before := faceName(t, e, e.MapFont(desc).Handle)

	for i := range faces {
		faces[i] = makeFace(t, "Other", "Regular", 400, false, sysfont.CharsetANSI)
	}

	m := e.MapFont(desc)
	if got := faceName(t, e, m.Handle); got != before {
		t.Errorf("got %q after changing the face list, want %q", got, before)
	}
	if !m.Exact {
		t.Error("exact match lost after changing the face list")
	}
}

func TestGetFontData(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, FaceName: "Arial"})
	h := m.Handle

	n := e.GetFontData(h, sysfont.WholeFile, nil)
	if n != len(goregular.TTF) {
		t.Fatalf("size: got %d, want %d", n, len(goregular.TTF))
	}

	small := bytes.Repeat([]byte{0xAA}, n-1)
	if got := e.GetFontData(h, sysfont.WholeFile, small); got != n {
		t.Errorf("undersized buffer: got %d, want %d", got, n)
	}
	for i, b := range small {
		if b != 0xAA {
			t.Fatalf("undersized buffer modified at offset %d", i)
		}
	}

	buf := make([]byte, n+10)
	if got := e.GetFontData(h, sysfont.WholeFile, buf); got != n {
		t.Errorf("got %d, want %d", got, n)
	}
	if !bytes.Equal(buf[:n], goregular.TTF) {
		t.Error("wrong font data")
	}

	// The head table is 54 bytes long and contains a magic number.
	head, err := sysfont.ReadFontData(e, h, sysfont.MakeTag("head"))
	if err != nil {
		t.Fatal(err)
	}
	if len(head) != 54 {
		t.Errorf("head table: got %d bytes, want 54", len(head))
	}
	if d := cmp.Diff([]byte{0x5F, 0x0F, 0x3C, 0xF5}, head[12:16]); d != "" {
		t.Errorf("head magic (-want +got):\n%s", d)
	}

	if n := e.GetFontData(h, sysfont.MakeTag("zzzz"), nil); n != 0 {
		t.Errorf("missing table: got %d, want 0", n)
	}
	if n := e.GetFontData(h+1000, sysfont.WholeFile, nil); n != 0 {
		t.Errorf("invalid handle: got %d, want 0", n)
	}
}

func TestIdempotent(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 700, FaceName: "Arial"})

	n1 := e.GetFaceName(m.Handle, nil)
	buf1 := make([]byte, n1)
	e.GetFaceName(m.Handle, buf1)
	n2 := e.GetFaceName(m.Handle, nil)
	buf2 := make([]byte, n2)
	e.GetFaceName(m.Handle, buf2)
	if d := cmp.Diff(buf1, buf2); d != "" {
		t.Errorf("face name changed (-first +second):\n%s", d)
	}
	if n1 != len("Arial Bold")+1 || buf1[n1-1] != 0 {
		t.Errorf("face name not zero terminated: %q", buf1)
	}

	if e.GetFontCharset(m.Handle) != e.GetFontCharset(m.Handle) {
		t.Error("charset changed")
	}
}

func TestHandles(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	desc := &sysfont.Descriptor{Weight: 400, FaceName: "Arial"}
	seen := make(map[sysfont.Handle]bool)
	for i := 0; i < 10; i++ {
		m := e.MapFont(desc)
		if seen[m.Handle] {
			t.Fatalf("handle %d reused", m.Handle)
		}
		seen[m.Handle] = true
		if i%2 == 0 {
			e.DeleteFont(m.Handle)
			if n := e.GetFontData(m.Handle, sysfont.WholeFile, nil); n != 0 {
				t.Errorf("deleted handle still usable")
			}
		}
	}
	if n := e.NumOpen(); n != 5 {
		t.Errorf("open fonts: got %d, want 5", n)
	}

	// deleting twice, or deleting unknown handles, is harmless
	for h := range seen {
		e.DeleteFont(h)
		e.DeleteFont(h)
	}
	e.DeleteFont(sysfont.NoHandle)
	if n := e.NumOpen(); n != 0 {
		t.Errorf("open fonts: got %d, want 0", n)
	}
}

func TestRelease(t *testing.T) {
	e := New(arialFaces(t), nil)

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, FaceName: "Arial"})
	if e.GetFontData(m.Handle, sysfont.WholeFile, nil) == 0 {
		t.Fatal("no data")
	}

	e.Release()
	if n := e.NumOpen(); n != 0 {
		t.Errorf("open fonts after release: %d", n)
	}
	if m := e.MapFont(&sysfont.Descriptor{Weight: 400, FaceName: "Arial"}); m.Found() {
		t.Error("released engine returned a font")
	}
	if h := e.GetFont("Arial"); h != sysfont.NoHandle {
		t.Error("released engine returned a font")
	}
}

func TestGetFont(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	cases := []struct {
		name  string
		found bool
		want  string
	}{
		{"Arial Bold", true, "Arial Bold"},
		{"Arial-BoldMT", true, "Arial Bold"},
		{"Arial", true, "Arial"},
		{"arial bold", false, ""},
		{"Helvetica", false, ""},
		{"", false, ""},
	}
	for _, c := range cases {
		h := e.GetFont(c.name)
		if (h != sysfont.NoHandle) != c.found {
			t.Errorf("%q: found=%t, want %t", c.name, h != sysfont.NoHandle, c.found)
			continue
		}
		if c.found {
			if got := faceName(t, e, h); got != c.want {
				t.Errorf("%q: got %q, want %q", c.name, got, c.want)
			}
		}
	}
}

type recorder []string

func (r *recorder) AddInstalledFont(face string, cs sysfont.Charset) {
	*r = append(*r, face+"/"+cs.String())
}

func TestEnumFonts(t *testing.T) {
	faces := arialFaces(t)
	faces = append(faces, makeFace(t, "SimSun", "", 400, false, sysfont.CharsetGB2312, sysfont.CharsetANSI))
	e := New(faces, nil)
	defer e.Release()

	var got recorder
	sysfont.EnumFonts(e, &got)
	want := recorder{
		"Arial/" + sysfont.CharsetANSI.String(),
		"Arial Bold/" + sysfont.CharsetANSI.String(),
		"SimSun/" + sysfont.CharsetGB2312.String(),
		"SimSun/" + sysfont.CharsetANSI.String(),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected fonts (-want +got):\n%s", d)
	}
}

func TestTieBreak(t *testing.T) {
	a := makeFace(t, "First", "", 400, false, sysfont.CharsetANSI)
	b := makeFace(t, "Second", "", 400, false, sysfont.CharsetANSI)
	e := New(FaceList{a, b}, nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{Weight: 400, Charset: sysfont.CharsetANSI})
	if got := faceName(t, e, m.Handle); got != "First" {
		t.Errorf("got %q, want %q", got, "First")
	}
}

func TestFixedPitch(t *testing.T) {
	faces, err := gofont.Faces()
	if err != nil {
		t.Fatal(err)
	}
	e := New(FaceList(faces), nil)
	defer e.Release()

	m := e.MapFont(&sysfont.Descriptor{
		Weight:      400,
		Charset:     sysfont.CharsetANSI,
		PitchFamily: sysfont.FixedPitch,
	})
	f := e.open[m.Handle].face
	if !f.PitchFamily.IsFixedPitch() {
		t.Errorf("got proportional font %q", f.Name)
	}

	boldItalic, err := gofont.BoldItalic.Face()
	if err != nil {
		t.Fatal(err)
	}
	m = e.MapFont(&sysfont.Descriptor{Weight: 700, Italic: true, Charset: sysfont.CharsetANSI})
	f = e.open[m.Handle].face
	if f.PitchFamily.IsFixedPitch() || !f.Italic || f.Weight != boldItalic.Weight {
		t.Errorf("wrong font %q", f.Name)
	}
	if f.Name != boldItalic.Name {
		t.Errorf("got %q, want %q", f.Name, boldItalic.Name)
	}
}

func TestRank(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	desc := &sysfont.Descriptor{Weight: 700, Charset: sysfont.CharsetANSI, FaceName: "Arial"}
	ranked := e.Rank(desc)
	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Face.Name != "Arial Bold" || ranked[1].Face.Name != "Arial" {
		t.Errorf("wrong order: %s, %s", ranked[0].Face.Name, ranked[1].Face.Name)
	}
	if ranked[0].Score > ranked[1].Score {
		t.Error("scores not sorted")
	}

	m := e.MapFont(desc)
	if got := faceName(t, e, m.Handle); got != ranked[0].Face.Name {
		t.Errorf("MapFont chose %q, Rank chose %q", got, ranked[0].Face.Name)
	}
}

func TestConcurrent(t *testing.T) {
	e := New(arialFaces(t), nil)
	defer e.Release()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(weight int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				m := e.MapFont(&sysfont.Descriptor{Weight: weight, FaceName: "Arial"})
				_, err := sysfont.ReadFontData(e, m.Handle, sysfont.MakeTag("head"))
				if err != nil {
					t.Error(err)
				}
				e.DeleteFont(m.Handle)
			}
		}(100 * (i + 1))
	}
	wg.Wait()

	if n := e.NumOpen(); n != 0 {
		t.Errorf("open fonts: got %d, want 0", n)
	}
}
