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
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/sysfont"
	"seehuhn.de/go/sysfont/catalog"
)

// NameMatch describes how well a face name matches the request.
type NameMatch int

// Possible values of NameMatch, from best to worst.
const (
	NameExact      NameMatch = iota // identical names
	NameNormalized                  // equal after ignoring case and spacing
	NameSimilar                     // alias, or one name contains the other
	NameNone
)

func (m NameMatch) String() string {
	switch m {
	case NameExact:
		return "exact"
	case NameNormalized:
		return "normalized"
	case NameSimilar:
		return "similar"
	default:
		return "none"
	}
}

// Weights of the score components.  Each component dominates all
// components with smaller weights.
const (
	nameWeight   = 1_000_000_000_000
	italicWeight = 10_000_000_000
	pitchWeight  = 100_000_000
	styleWeight  = 4 // multiplies the weight distance

	maxWeightDistance = 1_000_000
)

// request is a descriptor prepared for matching.
type request struct {
	desc *sysfont.Descriptor

	name     string // as requested
	normName string
	normBase string // normalized family part of the requested name

	weight int
}

func newRequest(desc *sysfont.Descriptor) *request {
	r := &request{
		desc:   desc,
		name:   strings.TrimSpace(desc.FaceName),
		weight: desc.Weight,
	}
	if r.weight == 0 {
		r.weight = sysfont.WeightNormal
	}
	if r.name != "" {
		r.normName = normalize(r.name)
		r.normBase = normalize(sysfont.ParseBaseFont(r.name).Family)
	}
	return r
}

// withName returns a copy of r which asks for the given face name.
func (r *request) withName(name string) *request {
	d := *r.desc
	d.FaceName = name
	return newRequest(&d)
}

func (e *Engine) matchName(r *request, f *catalog.Face) NameMatch {
	if r.name == "" {
		return NameNone
	}
	if r.name == f.Name || r.name == f.Family || r.name == f.PostScriptName {
		return NameExact
	}

	candidates := [...]string{
		normalize(f.Family),
		normalize(f.Name),
		normalize(f.PostScriptName),
	}
	for _, c := range candidates {
		if c != "" && (c == r.normName || c == r.normBase) {
			return NameNormalized
		}
	}

	family := candidates[0]
	if family == "" {
		return NameNone
	}
	if e.aliases.same(family, r.normName) || e.aliases.same(family, r.normBase) {
		return NameSimilar
	}
	q := r.normBase
	if len(q) >= 3 && len(family) >= 3 &&
		(strings.Contains(q, family) || strings.Contains(family, q)) {
		return NameSimilar
	}
	return NameNone
}

// weightPenalty measures the distance between two weights.  For equal
// distances, heavier fonts are preferred.
func weightPenalty(want, have int) int64 {
	d := int64(clampWeight(have)) - int64(clampWeight(want))
	lighter := int64(0)
	if d < 0 {
		d = -d
		lighter = 1
	}
	return 2*d + lighter
}

// clampWeight limits w to a range where weight differences cannot
// overflow.
func clampWeight(w int) int {
	if w < -maxWeightDistance {
		return -maxWeightDistance
	}
	if w > maxWeightDistance {
		return maxWeightDistance
	}
	return w
}

// Candidate is a face together with its score for a request.
type Candidate struct {
	Face  *catalog.Face
	Name  NameMatch
	Score int64 // lower is better
}

func (e *Engine) score(r *request, f *catalog.Face) Candidate {
	name := e.matchName(r, f)
	s := int64(name) * nameWeight

	if r.desc.Italic != f.Italic {
		s += italicWeight
	}

	want := r.desc.PitchFamily
	have := f.PitchFamily
	if want.IsFixedPitch() && !have.IsFixedPitch() {
		s += pitchWeight
	}

	s += weightPenalty(r.weight, int(f.Weight)) * styleWeight

	// family classification is only a tie-break
	if want.Family() != 0 && want.Family() != have.Family() {
		s += 2
	}
	if !want.IsFixedPitch() && have.IsFixedPitch() {
		s++
	}

	return Candidate{Face: f, Name: name, Score: s}
}

// best returns the face with the lowest score.  Ties are resolved in
// favour of the face which comes first.
func (e *Engine) best(r *request, pool []*catalog.Face) (Candidate, bool) {
	var res Candidate
	found := false
	for _, f := range pool {
		c := e.score(r, f)
		if !found || c.Score < res.Score {
			res = c
			found = true
		}
	}
	return res, found
}

// selection is the result of the matching algorithm.
type selection struct {
	cand      Candidate
	charsetOK bool
	fallback  bool // the charset font table was used
	found     bool
}

// pool returns the faces which are eligible for the request.
// The second return value indicates whether the faces support the
// requested charset.  If the charset font table was used, the request
// is updated to ask for the fallback family.
func (e *Engine) pool(r *request) ([]*catalog.Face, *request, bool, bool) {
	cs := r.desc.Charset
	if cs.AcceptsAny() {
		return e.faces, r, true, false
	}

	var matching []*catalog.Face
	for _, f := range e.faces {
		if f.HasCharset(cs) {
			matching = append(matching, f)
		}
	}
	if len(matching) > 0 {
		return matching, r, true, false
	}

	fallbackName, ok := sysfont.LookupCharsetFontIn(e.table, cs)
	if ok {
		fr := r.withName(fallbackName)
		var family []*catalog.Face
		for _, f := range e.faces {
			if e.matchName(fr, f) <= NameNormalized {
				family = append(family, f)
			}
		}
		if len(family) > 0 {
			return family, fr, false, true
		}
	}

	return e.faces, r, false, false
}

func (e *Engine) selectFace(desc *sysfont.Descriptor) selection {
	r := newRequest(desc)
	faces, r, charsetOK, fallback := e.pool(r)
	cand, found := e.best(r, faces)
	return selection{
		cand:      cand,
		charsetOK: charsetOK,
		fallback:  fallback,
		found:     found,
	}
}

// isExact reports whether the selected face matches every aspect of the
// request.
func (s *selection) isExact(desc *sysfont.Descriptor) bool {
	if !s.found || !s.charsetOK || s.fallback {
		return false
	}
	f := s.cand.Face
	want := desc.Weight
	if want == 0 {
		want = sysfont.WeightNormal
	}
	return s.cand.Name == NameExact &&
		int(f.Weight) == want &&
		f.Italic == desc.Italic
}

// Rank returns all faces which are eligible for the request, ordered
// from best to worst match.  The first entry is the face which MapFont
// would select.
func (e *Engine) Rank(desc *sysfont.Descriptor) []Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := newRequest(desc)
	faces, r, _, _ := e.pool(r)
	res := make([]Candidate, len(faces))
	for i, f := range faces {
		res[i] = e.score(r, f)
	}
	slices.SortStableFunc(res, func(a, b Candidate) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	})
	return res
}
