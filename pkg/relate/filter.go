package relate

import (
	"fmt"

	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Roots returns the members of s none of whose parents are also in s:
// the "brick wall" ancestors beyond whom the set records no further
// lineage.
func Roots(s Set) Set {
	roots := Set{}
	for id, p := range s {
		if !anyIn(p.Parents(), s) {
			roots[id] = p
		}
	}
	return roots
}

// Gap flags a person on a frontier whose recorded parentage is
// incomplete: fewer than two parents are known, so at least one
// ancestor exists that the file does not document.
type Gap struct {
	Person *pedigree.Person
}

func (g Gap) String() string {
	return fmt.Sprintf("[unknown parent(s) of %s]", g.Person)
}

// Frontier expands the members of people that lie inside filter by one
// generation beyond it. For every person in both sets it collects the
// parents not in filter, and records a [Gap] when the person has fewer
// than two parents on file. The gaps come back alongside the set; a
// missing parent has no identifier and must not masquerade as a graph
// node. Gaps are ordered by the flagged person's identifier.
func Frontier(people, filter Set) (Set, []Gap) {
	frontier := Set{}
	var gaps []Gap
	for _, p := range people.Intersect(filter).People() {
		for _, parent := range p.Parents() {
			if !filter.Has(parent) {
				frontier.Add(parent)
			}
		}
		if len(p.Parents()) < 2 {
			gaps = append(gaps, Gap{Person: p})
		}
	}
	return frontier, gaps
}

// MatchSubgraph returns the union of relationship participants between
// home and every match: the minimal induced subgraph connecting the
// home person to each match through their nearest common ancestors.
// Matches with no common ancestor contribute nothing.
func MatchSubgraph(home *pedigree.Person, matches []*pedigree.Person, opts ...Option) (Set, error) {
	people := Set{}
	for _, match := range matches {
		rels, err := Relationships(home, match, opts...)
		if err != nil {
			return nil, err
		}
		for id, p := range Participants(rels) {
			people[id] = p
		}
	}
	return people, nil
}

// FilterRelatives restricts s to the blood relatives of anchor,
// cutting away the branches that connect only through marriage.
func FilterRelatives(s Set, anchor *pedigree.Person) Set {
	return s.Intersect(Relatives(anchor))
}
