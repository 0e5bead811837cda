package relate

import (
	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Entry is one row of an ahnentafel listing: a person and their
// position number. The subject is 1; the father of position n is 2n
// and the mother 2n+1.
type Entry struct {
	Number int
	Person *pedigree.Person
}

// Ahnentafel lists p's ancestors with positional numbering, breadth
// first. The father/mother split follows parent list order: most
// files list HUSB before WIFE, so the first parent lands on the even
// slot. When no sex fields back this up the assignment is a
// best-effort reading of input order, not a guarantee.
//
// Under pedigree collapse the same person appears once per position
// held. The listing shares the step budget of [AncestorLines]; a
// cyclic parent link exhausts it and reports TRAVERSAL_LIMIT instead
// of looping.
func Ahnentafel(p *pedigree.Person, opts ...Option) ([]Entry, error) {
	tr := newTraversal(opts)

	type slot struct {
		number int
		person *pedigree.Person
	}
	queue := []slot{{1, p}}
	var entries []Entry

	for len(queue) > 0 {
		if len(entries) >= tr.maxSteps {
			return nil, errors.New(errors.ErrCodeTraversalLimit,
				"ahnentafel of %s exceeded %d entries", p.ID(), tr.maxSteps)
		}
		curr := queue[0]
		queue = queue[1:]
		entries = append(entries, Entry{Number: curr.number, Person: curr.person})

		for i, parent := range curr.person.Parents() {
			queue = append(queue, slot{2*curr.number + i, parent})
		}
	}
	return entries, nil
}
