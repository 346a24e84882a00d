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

import "bytes"

// CopyOut implements the provider side of the two-phase buffer protocol.
// If buf can hold data, data is copied into buf.  In all cases the length
// of data is returned.  Nothing is written to an undersized buffer.
func CopyOut(buf, data []byte) int {
	if len(buf) >= len(data) {
		copy(buf, data)
	}
	return len(data)
}

// CopyName is like CopyOut, but appends a terminating zero byte to name.
func CopyName(buf []byte, name string) int {
	n := len(name) + 1
	if len(buf) >= n {
		copy(buf, name)
		buf[n-1] = 0
	}
	return n
}

// ReadFontData retrieves a font table, or the whole font file if table is
// WholeFile.  This first asks p for the size of the data, and then
// fetches the data into a buffer of exactly this size.
//
// ErrNoData is returned if the provider has no data for the request.
func ReadFontData(p Provider, h Handle, table Tag) ([]byte, error) {
	n := p.GetFontData(h, table, nil)
	if n <= 0 {
		return nil, ErrNoData
	}
	buf := make([]byte, n)
	m := p.GetFontData(h, table, buf)
	if m != n {
		return nil, &ProtocolError{Op: "GetFontData", Want: n, Got: m}
	}
	return buf, nil
}

// FaceName returns the face name of an open font.  The empty string is
// returned if p does not implement FaceNamer.
func FaceName(p Provider, h Handle) string {
	n := GetFaceName(p, h, nil)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	if GetFaceName(p, h, buf) != n {
		return ""
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
