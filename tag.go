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

import "fmt"

// Tag identifies a table inside a TrueType/OpenType font file.
// The four tag bytes are stored in big-endian order, as in the sfnt
// table directory.
type Tag uint32

// WholeFile is the tag used to request the complete font file.
const WholeFile Tag = 0

// MakeTag converts a four-character table name like "glyf" or "OS/2"
// to a Tag.  Shorter names are padded with spaces.
func MakeTag(name string) Tag {
	if len(name) > 4 {
		panic(fmt.Sprintf("invalid table name %q", name))
	}
	var buf [4]byte
	copy(buf[:], "    ")
	copy(buf[:], name)
	return Tag(buf[0])<<24 | Tag(buf[1])<<16 | Tag(buf[2])<<8 | Tag(buf[3])
}

// String returns the table name.  WholeFile is shown as "*".
func (t Tag) String() string {
	if t == WholeFile {
		return "*"
	}
	buf := []byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
	for _, c := range buf {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08x", uint32(t))
		}
	}
	return string(buf)
}
