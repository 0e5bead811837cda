package relate

import "github.com/sligocki/gedcom/pkg/pedigree"

// Ancestors returns p together with every person reachable by
// repeatedly following parent links. The walk is an iterative
// breadth-first search over a visited set, so each person is expanded
// once even when pedigree collapse makes them reachable along many
// lines, and a cyclic parent link in malformed data cannot loop.
func Ancestors(p *pedigree.Person) Set {
	return closure(p, (*pedigree.Person).Parents)
}

// Descendants returns p together with every person reachable by
// repeatedly following child links.
func Descendants(p *pedigree.Person) Set {
	return closure(p, (*pedigree.Person).Children)
}

func closure(start *pedigree.Person, next func(*pedigree.Person) []*pedigree.Person) Set {
	result := Set{start.ID(): start}
	queue := []*pedigree.Person{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range next(curr) {
			if !result.Has(n) {
				result.Add(n)
				queue = append(queue, n)
			}
		}
	}
	return result
}

// Relatives returns every blood relative of p: the union of the
// descendant closures of all of p's ancestors. In-laws are excluded;
// the spouse of a cousin shares no ancestor with p and so never
// appears.
func Relatives(p *pedigree.Person) Set {
	relatives := Set{}
	for _, anc := range Ancestors(p) {
		for id, desc := range Descendants(anc) {
			relatives[id] = desc
		}
	}
	return relatives
}

// CommonAncestors returns the intersection of the two ancestor
// closures: everyone who is an ancestor of both p1 and p2.
func CommonAncestors(p1, p2 *pedigree.Person) Set {
	return Ancestors(p1).Intersect(Ancestors(p2))
}

// MostRecent keeps the frontier of a candidate ancestor set: the
// members none of whose children are also members. Applied to a
// common-ancestor set this yields the ancestors closest to the two
// query people.
func MostRecent(s Set) Set {
	recent := Set{}
	for id, p := range s {
		if !anyIn(p.Children(), s) {
			recent[id] = p
		}
	}
	return recent
}

// MRCA returns the most recent common ancestors of p1 and p2: their
// common ancestors with no child that is also a common ancestor.
func MRCA(p1, p2 *pedigree.Person) Set {
	return MostRecent(CommonAncestors(p1, p2))
}

func anyIn(people []*pedigree.Person, s Set) bool {
	for _, p := range people {
		if s.Has(p) {
			return true
		}
	}
	return false
}
