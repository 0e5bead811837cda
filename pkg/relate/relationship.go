package relate

import "github.com/sligocki/gedcom/pkg/pedigree"

// Relationship is one independent family connection between two
// people: a shared most recent common ancestor together with every
// ancestor line from each person up to that ancestor. Two people
// related in several independent ways (double cousins, say) yield one
// Relationship per way.
type Relationship struct {
	// Ancestor is the most recent common ancestor this connection
	// runs through.
	Ancestor *pedigree.Person

	// Lines1 holds every line from the first query person up to
	// Ancestor, Lines2 from the second. Usually one line each; more
	// when pedigree collapse gives a person several routes to the
	// same ancestor.
	Lines1 []Line
	Lines2 []Line
}

// Relationships discovers every independent relationship between p1
// and p2. It enumerates both people's ancestor lines, takes the most
// recent ancestors common to both, and pairs the line lists through
// each. The result is sorted by ancestor identifier and empty when no
// common ancestor exists. Swapping p1 and p2 returns the same
// connections with Lines1 and Lines2 exchanged.
func Relationships(p1, p2 *pedigree.Person, opts ...Option) ([]Relationship, error) {
	lines1, err := AncestorLines(p1, opts...)
	if err != nil {
		return nil, err
	}
	lines2, err := AncestorLines(p2, opts...)
	if err != nil {
		return nil, err
	}

	mrcas := MostRecent(lines1.Ancestors().Intersect(lines2.Ancestors()))

	rels := make([]Relationship, 0, len(mrcas))
	for _, anc := range mrcas.People() {
		rels = append(rels, Relationship{
			Ancestor: anc,
			Lines1:   lines1[anc.ID()],
			Lines2:   lines2[anc.ID()],
		})
	}
	return rels, nil
}

// Participants collects every person appearing on any line of any of
// the relationships: both query people, the shared ancestors, and
// everyone along the connecting lines.
func Participants(rels []Relationship) Set {
	people := Set{}
	for _, rel := range rels {
		for _, lines := range [...][]Line{rel.Lines1, rel.Lines2} {
			for _, line := range lines {
				for _, p := range line {
					people.Add(p)
				}
			}
		}
	}
	return people
}
