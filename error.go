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

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFound indicates that no font matches a request, not even
	// after substitution.
	ErrNotFound = errors.New("sysfont: font not found")

	// ErrNoData indicates that a provider returned no data for a font
	// or table.
	ErrNoData = errors.New("sysfont: no font data")
)

// ProtocolError indicates that a provider violated the two-phase buffer
// protocol, by writing a different number of bytes than it announced.
type ProtocolError struct {
	Op   string
	Want int
	Got  int
}

func (err *ProtocolError) Error() string {
	return "sysfont: " + err.Op + ": provider announced " +
		strconv.Itoa(err.Want) + " bytes but returned " + strconv.Itoa(err.Got)
}
