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

// Package registry manages the font provider used by a renderer.
//
// A [Registry] holds at most one active [sysfont.Provider].  If no
// provider has been installed, a default provider is constructed on
// first use.  The default provider is a [match.Engine] which selects
// fonts from the system font directories and the Go fonts.
package registry

import (
	"errors"
	"sync"

	"seehuhn.de/go/sysfont"
	"seehuhn.de/go/sysfont/catalog"
	"seehuhn.de/go/sysfont/gofont"
	"seehuhn.de/go/sysfont/match"
)

var (
	// ErrVersion is returned when a provider implements an unsupported
	// interface version.
	ErrVersion = errors.New("registry: unsupported provider version")

	// ErrNotDefault is returned by ReleaseDefaultProvider, if the
	// provider was not obtained from DefaultProvider.
	ErrNotDefault = errors.New("registry: not the default provider")
)

// Options allows to customize the default provider.
type Options struct {
	// Dirs lists the font directories to scan.  If nil, the directories
	// returned by catalog.SystemDirs are used.
	Dirs []string

	// FontMaps lists font map files to read, see catalog.AddFontMap.
	FontMaps []string

	// NoGoFonts prevents the Go fonts from being added to the catalog.
	NoGoFonts bool

	// Match is passed to match.New.
	Match *match.Options
}

// A Registry holds the font provider for a renderer.
//
// All methods of a Registry are serialized.  Provider calls made through
// Load are protected by the same lock, so that installing or releasing a
// provider never overlaps with a lookup.  Callers which use the provider
// returned by Current directly must provide their own synchronization.
type Registry struct {
	mu sync.Mutex

	opt *Options

	current   sysfont.Provider
	def       *match.Engine
	installed *InstalledFonts
}

// New creates a Registry.  opt configures the default provider and may
// be nil.
func New(opt *Options) *Registry {
	if opt == nil {
		opt = &Options{}
	}
	return &Registry{
		opt:       opt,
		installed: newInstalledFonts(),
	}
}

// Install makes p the active provider.  A previously installed provider
// is not released; this is the responsibility of the caller.
//
// If p implements sysfont.Enumerator, its fonts are listed and used to
// recognise exact face names in Load.
func (r *Registry) Install(p sysfont.Provider) error {
	if p == nil {
		return errors.New("registry: nil provider")
	}
	if v := p.Version(); v != sysfont.InterfaceVersion {
		return ErrVersion
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.installLocked(p)
	return nil
}

func (r *Registry) installLocked(p sysfont.Provider) {
	r.current = p
	r.installed = newInstalledFonts()
	sysfont.EnumFonts(p, r.installed)
	sysfont.Logger().Info("font provider installed",
		"installed", r.installed.Len(),
		"default", p == sysfont.Provider(r.def))
}

// Current returns the active provider.  If no provider has been
// installed, the default provider is constructed and installed.
func (r *Registry) Current() sysfont.Provider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLocked()
}

func (r *Registry) currentLocked() sysfont.Provider {
	if r.current == nil {
		r.installLocked(r.defaultLocked())
	}
	return r.current
}

// UninstallAndRelease releases the active provider and clears the slot.
// If no provider is installed, nothing happens.
func (r *Registry) UninstallAndRelease() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return
	}
	r.current.Release()
	if r.current == sysfont.Provider(r.def) {
		r.def = nil
	}
	r.current = nil
	r.installed = newInstalledFonts()
	sysfont.Logger().Info("font provider released")
}

// DefaultProvider returns the default provider, constructing it if
// needed.  The default provider is not installed by this call.
func (r *Registry) DefaultProvider() sysfont.Provider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultLocked()
}

func (r *Registry) defaultLocked() *match.Engine {
	if r.def != nil {
		return r.def
	}

	cat := catalog.New()
	if r.opt.Dirs == nil {
		cat.AddSystemDirs()
	} else {
		for _, dir := range r.opt.Dirs {
			_, err := cat.AddDir(dir)
			if err != nil {
				sysfont.Logger().Warn("cannot read font directory", "dir", dir, "error", err)
			}
		}
	}
	for _, fname := range r.opt.FontMaps {
		err := cat.AddFontMapFile(fname)
		if err != nil {
			sysfont.Logger().Warn("cannot read font map", "file", fname, "error", err)
		}
	}
	if !r.opt.NoGoFonts {
		faces, err := gofont.Faces()
		if err == nil {
			cat.Add(faces...)
		}
	}

	r.def = match.New(cat, r.opt.Match)
	return r.def
}

// ReleaseDefaultProvider releases a provider obtained from
// DefaultProvider.  If p is installed, the slot is cleared.
// ErrNotDefault is returned if p is not the current default provider.
func (r *Registry) ReleaseDefaultProvider(p sysfont.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.def == nil || p != sysfont.Provider(r.def) {
		return ErrNotDefault
	}
	r.def.Release()
	if r.current == p {
		r.current = nil
		r.installed = newInstalledFonts()
	}
	r.def = nil
	sysfont.Logger().Info("default font provider released")
	return nil
}

// InstalledFonts returns the fonts reported by the active provider when
// it was installed.  If no provider is installed, the default provider
// is constructed and installed first.
func (r *Registry) InstalledFonts() []InstalledFont {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentLocked()
	return r.installed.List()
}
