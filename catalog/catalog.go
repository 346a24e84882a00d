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

// Package catalog keeps an inventory of installed fonts.
//
// A [Catalog] is an ordered list of [Face] records.  Faces can be added
// one by one, by scanning font directories, or by reading a font map
// file.  The order in which faces are added is preserved, and is used to
// break ties when fonts are matched.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"seehuhn.de/go/sysfont"
)

// A Catalog holds information about installed fonts.
//
// It is safe to use a Catalog concurrently from multiple goroutines.
type Catalog struct {
	sync.RWMutex
	faces []*Face
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add appends faces to the catalog.
func (c *Catalog) Add(faces ...*Face) {
	c.Lock()
	c.faces = append(c.faces, faces...)
	c.Unlock()
}

// Faces returns the faces in the catalog, in the order they were added.
// The returned slice is a snapshot; later changes to the catalog are
// not reflected.
func (c *Catalog) Faces() []*Face {
	c.RLock()
	defer c.RUnlock()
	res := make([]*Face, len(c.faces))
	copy(res, c.faces)
	return res
}

// Len returns the number of faces in the catalog.
func (c *Catalog) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.faces)
}

// AddDir adds all font files found in dir and its subdirectories.
// Files which cannot be parsed are skipped.  The number of faces added
// is returned.
func (c *Catalog) AddDir(dir string) (int, error) {
	logger := sysfont.Logger()

	var faces []*Face
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logger.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}

		face, err := ReadFile(path)
		if err != nil {
			logger.Debug("skipping font file", "path", path, "error", err)
			return nil
		}
		faces = append(faces, face)
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.Add(faces...)
	logger.Debug("scanned font directory", "dir", dir, "faces", len(faces))
	return len(faces), nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".pfa", ".pfb":
		return true
	default:
		return false
	}
}

// AddFontMap reads a font map from r and adds the listed fonts to the
// catalog.  A font map consists of lines of the form
//
//	<path> <charsets> [<name>]
//
// where <path> is the path of a font file, <charsets> is either "*" or a
// comma-separated list of charset names or numbers, and the optional
// <name> is the face name to report for the font.  If <charsets> is "*",
// the charsets are taken from the font file.  The fields must be
// separated by single spaces; <name> may contain spaces.  A <name> which
// is not valid UTF-8 is decoded using the legacy encoding of the first
// charset of the font.  Lines starting with '#' or '%' are ignored.
func (c *Catalog) AddFontMap(r io.Reader) error {
	var faces []*Face

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			return fmt.Errorf("invalid font map line: %q", line)
		}

		var charsets []sysfont.Charset
		if parts[1] != "*" {
			for _, s := range strings.Split(parts[1], ",") {
				cs, ok := sysfont.ParseCharset(s)
				if !ok {
					return fmt.Errorf("invalid charset %q", s)
				}
				charsets = append(charsets, cs)
			}
		}

		face, err := ReadFile(parts[0])
		if err != nil {
			return err
		}
		if charsets != nil {
			face.Charsets = charsets
		}
		if len(parts) == 3 {
			raw := []byte(strings.TrimSpace(parts[2]))
			face.Name = face.Charset().DecodeName(raw)
		}
		faces = append(faces, face)
	}
	if err := lines.Err(); err != nil {
		return err
	}

	c.Add(faces...)
	return nil
}

// AddFontMapFile reads a font map from the named file.
// See AddFontMap for the file format.
func (c *Catalog) AddFontMapFile(fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()
	return c.AddFontMap(fd)
}

// SystemDirs returns the directories where fonts are commonly installed
// on the current operating system.  Directories which do not exist are
// included.
func SystemDirs() []string {
	home, _ := os.UserHomeDir()

	var dirs []string
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin", "ios":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "android":
		dirs = append(dirs, "/system/fonts")
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"))
		}
	}
	return dirs
}

// AddSystemDirs scans all directories returned by SystemDirs.
// Directories which do not exist are ignored.
func (c *Catalog) AddSystemDirs() {
	for _, dir := range SystemDirs() {
		_, err := c.AddDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			sysfont.Logger().Warn("cannot read font directory", "dir", dir, "error", err)
		}
	}
}
