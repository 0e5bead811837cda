package relate

import (
	"slices"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Line is one directed ancestor path: an ordered person sequence
// starting at the query person, each step moving to a parent, ending
// at the ancestor the line reaches.
type Line []*pedigree.Person

// Ancestor returns the last person on the line.
func (l Line) Ancestor() *pedigree.Person { return l[len(l)-1] }

func (l Line) contains(p *pedigree.Person) bool {
	for _, member := range l {
		if member.ID() == p.ID() {
			return true
		}
	}
	return false
}

// Lines maps each reachable ancestor's identifier to every distinct
// line from the query person up to that ancestor.
type Lines map[string][]Line

// Ancestors returns the set of ancestors the lines reach.
func (ls Lines) Ancestors() Set {
	s := make(Set, len(ls))
	for id, lines := range ls {
		s[id] = lines[0].Ancestor()
	}
	return s
}

// AncestorLines enumerates every distinct parent-path from p to each
// of its ancestors, breadth first. Pruning with a visited set would
// collapse the separate lines pedigree collapse creates, so every
// partial line is extended independently; two guards keep malformed
// or degenerate input from running away:
//
//   - a parent already on the current line means the data contains a
//     parent/child cycle: CYCLE_DETECTED
//   - exceeding the step budget (see [WithMaxSteps]) aborts with
//     TRAVERSAL_LIMIT
//
// Deduplication by ancestor identity is the caller's concern (see
// [MostRecent]); it must never happen per path.
func AncestorLines(p *pedigree.Person, opts ...Option) (Lines, error) {
	tr := newTraversal(opts)
	lines := Lines{}
	queue := []Line{{p}}

	for steps := 0; len(queue) > 0; steps++ {
		if steps >= tr.maxSteps {
			return nil, errors.New(errors.ErrCodeTraversalLimit,
				"ancestor lines of %s exceeded %d steps", p.ID(), tr.maxSteps)
		}
		line := queue[0]
		queue = queue[1:]

		curr := line.Ancestor()
		lines[curr.ID()] = append(lines[curr.ID()], line)

		for _, parent := range curr.Parents() {
			if line.contains(parent) {
				return nil, errors.New(errors.ErrCodeCycle,
					"%s is an ancestor of themselves", parent.ID())
			}
			queue = append(queue, append(slices.Clone(line), parent))
		}
	}
	return lines, nil
}
