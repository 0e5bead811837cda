package relate

// DefaultMaxSteps bounds the total queue expansions of the
// path-enumerating traversals ([AncestorLines], [Ahnentafel] and
// everything built on them). Closure walks visit each person once and
// need no budget, but line enumeration legitimately revisits people
// under pedigree collapse, so a runaway (or cyclic) input must be cut
// off rather than trusted.
const DefaultMaxSteps = 1 << 20

// Option adjusts a traversal.
type Option func(*traversal)

type traversal struct {
	maxSteps int
}

func newTraversal(opts []Option) traversal {
	t := traversal{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// WithMaxSteps overrides the traversal step budget.
func WithMaxSteps(n int) Option {
	return func(t *traversal) { t.maxSteps = n }
}
