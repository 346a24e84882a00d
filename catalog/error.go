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

// InvalidFontError indicates a font file which cannot be used.
type InvalidFontError struct {
	Path   string
	Reason string
	Err    error
}

func (err *InvalidFontError) Error() string {
	msg := "catalog: "
	if err.Path != "" {
		msg += err.Path + ": "
	}
	msg += err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *InvalidFontError) Unwrap() error {
	return err.Err
}
