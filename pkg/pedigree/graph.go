package pedigree

import (
	"strings"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/gedcom"
)

// GEDCOM tags consumed during graph construction. Every other tag is
// ignored here but stays reachable through [Person.Record].
const (
	tagIndividual = "INDI"
	tagFamily     = "FAM"
	tagHusband    = "HUSB"
	tagWife       = "WIFE"
	tagChild      = "CHIL"
)

// Default marker glyphs. A marker is a glyph prefixed to a NAME
// payload in the source file; see [Graph.Home] and [Graph.Matches].
const (
	HomeMarker  = "🏠"
	MatchMarker = "🔬"
)

// Graph is the bidirectional person graph built from a record list.
// It is immutable after [Build] returns and not safe for concurrent
// construction, but any number of goroutines may query a built graph.
type Graph struct {
	people map[string]*Person
	order  []string // insertion order of INDI records
}

// Build constructs the person graph from the top-level record list in
// two passes: collect individuals, then link families.
//
// A duplicate individual identifier or a family member reference to an
// unknown identifier is fatal; no partial graph is returned.
func Build(records []*gedcom.Record) (*Graph, error) {
	g := &Graph{people: make(map[string]*Person)}

	for _, rec := range records {
		if rec.Tag != tagIndividual {
			continue
		}
		if _, exists := g.people[rec.XRef]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateID, "duplicate individual %s", rec.XRef)
		}
		g.people[rec.XRef] = &Person{id: rec.XRef, record: rec}
		g.order = append(g.order, rec.XRef)
	}

	for _, rec := range records {
		if rec.Tag != tagFamily {
			continue
		}
		if err := g.linkFamily(rec); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// linkFamily scans one FAM record's immediate sub-records and adds
// mutual parent/child links for every (parent, child) pair it names.
// Marriage events, dates, places and other tags are ignored.
func (g *Graph) linkFamily(fam *gedcom.Record) error {
	var parentIDs, childIDs []string
	for _, sub := range fam.Subs {
		switch sub.Tag {
		case tagHusband, tagWife:
			parentIDs = append(parentIDs, sub.Data)
		case tagChild:
			childIDs = append(childIDs, sub.Data)
		}
	}

	for _, childID := range childIDs {
		child, ok := g.people[childID]
		if !ok {
			return errors.New(errors.ErrCodeUnknownID, "family %s lists unknown child %s", fam.XRef, childID)
		}
		for _, parentID := range parentIDs {
			parent, ok := g.people[parentID]
			if !ok {
				return errors.New(errors.ErrCodeUnknownID, "family %s lists unknown parent %s", fam.XRef, parentID)
			}
			child.parents = append(child.parents, parent)
			parent.children = append(parent.children, child)
		}
	}
	return nil
}

// Person returns the person with the given identifier.
func (g *Graph) Person(id string) (*Person, bool) {
	p, ok := g.people[id]
	return p, ok
}

// People returns every person in insertion order (the order their INDI
// records appeared in the input).
func (g *Graph) People() []*Person {
	people := make([]*Person, len(g.order))
	for i, id := range g.order {
		people[i] = g.people[id]
	}
	return people
}

// Len returns the number of people in the graph.
func (g *Graph) Len() int { return len(g.people) }

// Links returns the number of parent/child edges in the graph.
func (g *Graph) Links() int {
	n := 0
	for _, p := range g.people {
		n += len(p.children)
	}
	return n
}

// FindByName returns the person whose display name equals name exactly.
// The first match in insertion order wins if the file carries duplicate
// names.
func (g *Graph) FindByName(name string) (*Person, error) {
	if err := errors.ValidateLookupName(name); err != nil {
		return nil, err
	}
	for _, id := range g.order {
		if p := g.people[id]; p.Name() == name {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodePersonNotFound, "no person named %q", name)
}

// FindByPrefix returns every person whose display name starts with
// prefix, in insertion order.
func (g *Graph) FindByPrefix(prefix string) []*Person {
	var matched []*Person
	for _, id := range g.order {
		if p := g.people[id]; strings.HasPrefix(p.Name(), prefix) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Home returns the single person whose raw name starts with the home
// marker glyph. Zero or multiple carriers violate the home invariant
// and are reported as an error.
func (g *Graph) Home(marker string) (*Person, error) {
	if err := errors.ValidateMarker(marker); err != nil {
		return nil, err
	}
	carriers := g.Marked(marker)
	switch len(carriers) {
	case 1:
		return carriers[0], nil
	case 0:
		return nil, errors.New(errors.ErrCodeInvariant, "no person carries the home marker %q", marker)
	default:
		return nil, errors.New(errors.ErrCodeInvariant, "%d people carry the home marker %q, want exactly 1", len(carriers), marker)
	}
}

// Matches returns every person whose raw name starts with the match
// marker glyph, in insertion order. Any count, including zero, is
// valid.
func (g *Graph) Matches(marker string) []*Person {
	return g.Marked(marker)
}

// Marked returns every person whose raw name starts with the given
// glyph, in insertion order. It scans raw names so a marker is found
// even if a stray slash ever precedes it in the payload.
func (g *Graph) Marked(marker string) []*Person {
	var carriers []*Person
	for _, id := range g.order {
		if p := g.people[id]; strings.HasPrefix(p.RawName(), marker) {
			carriers = append(carriers, p)
		}
	}
	return carriers
}
