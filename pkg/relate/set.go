package relate

import (
	"slices"

	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Set is a collection of people keyed by identifier. Keying by the
// identifier string rather than pointer identity keeps sets comparable
// across graphs rebuilt from the same input.
type Set map[string]*pedigree.Person

// NewSet builds a set from the given people.
func NewSet(people ...*pedigree.Person) Set {
	s := make(Set, len(people))
	for _, p := range people {
		s[p.ID()] = p
	}
	return s
}

// Add inserts p into the set.
func (s Set) Add(p *pedigree.Person) { s[p.ID()] = p }

// Has reports whether p is a member of the set.
func (s Set) Has(p *pedigree.Person) bool {
	_, ok := s[p.ID()]
	return ok
}

// Union returns a new set holding every member of s or t.
func (s Set) Union(t Set) Set {
	u := make(Set, len(s)+len(t))
	for id, p := range s {
		u[id] = p
	}
	for id, p := range t {
		u[id] = p
	}
	return u
}

// Intersect returns a new set holding every member of both s and t.
func (s Set) Intersect(t Set) Set {
	small, large := s, t
	if len(t) < len(s) {
		small, large = t, s
	}
	u := Set{}
	for id, p := range small {
		if _, ok := large[id]; ok {
			u[id] = p
		}
	}
	return u
}

// Subtract returns a new set holding the members of s not in t.
func (s Set) Subtract(t Set) Set {
	u := Set{}
	for id, p := range s {
		if _, ok := t[id]; !ok {
			u[id] = p
		}
	}
	return u
}

// IDs returns the member identifiers in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// People returns the members sorted by identifier, for deterministic
// listing and export.
func (s Set) People() []*pedigree.Person {
	people := make([]*pedigree.Person, 0, len(s))
	for _, id := range s.IDs() {
		people = append(people, s[id])
	}
	return people
}
