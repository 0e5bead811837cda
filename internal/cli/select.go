package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pipeline"
	"github.com/sligocki/gedcom/pkg/relate"
)

// selectionOpts holds the flags that choose which people a graph command
// operates on. all, between, and dna are mutually exclusive selection
// modes; relativeOf composes with any of them as a post-filter.
type selectionOpts struct {
	all        bool     // every person in the file
	between    []string // the subgraph connecting two named people
	dna        bool     // the subgraph linking the home person to DNA matches
	relativeOf string   // keep only blood relatives of this person
}

// addSelectionFlags registers the shared selection flags on cmd.
func addSelectionFlags(cmd *cobra.Command, opts *selectionOpts) {
	cmd.Flags().BoolVar(&opts.all, "all", false, "select every person in the file")
	cmd.Flags().StringSliceVar(&opts.between, "between", nil, "select the people connecting two names: NAME1,NAME2")
	cmd.Flags().BoolVar(&opts.dna, "dna", false, "select the subgraph linking the home person to DNA matches")
	cmd.Flags().StringVar(&opts.relativeOf, "relative-of", "", "keep only blood relatives of this person")
}

// modes counts how many selection modes were requested.
func (o *selectionOpts) modes() int {
	n := 0
	if o.all {
		n++
	}
	if len(o.between) > 0 {
		n++
	}
	if o.dna {
		n++
	}
	return n
}

// validate checks flag combinations that can be rejected before parsing
// the input file.
func (o *selectionOpts) validate(required bool) error {
	switch n := o.modes(); {
	case n > 1:
		return errors.New(errors.ErrCodeInvalidInput, "choose one of --all, --between, or --dna")
	case n == 0 && required:
		return errors.New(errors.ErrCodeInvalidInput, "one of --all, --between, or --dna is required")
	}
	if len(o.between) > 0 && len(o.between) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "--between takes exactly two names, got %d", len(o.between))
	}
	return nil
}

// resolveSelection applies the selection flags to a parsed file and
// returns the chosen people. With no mode set it selects everyone, so
// commands where selection is optional behave like --all.
func resolveSelection(ctx context.Context, result *pipeline.Result, opts *selectionOpts) (relate.Set, error) {
	var (
		set relate.Set
		err error
	)
	switch {
	case len(opts.between) == 2:
		set, err = betweenSelection(ctx, result, opts.between[0], opts.between[1])
	case opts.dna:
		set, err = dnaSelection(ctx, result)
	default:
		set = relate.NewSet(result.Graph.People()...)
	}
	if err != nil {
		return nil, err
	}

	if opts.relativeOf != "" {
		anchor, err := resolvePerson(ctx, result, opts.relativeOf)
		if err != nil {
			return nil, err
		}
		set = relate.FilterRelatives(set, anchor)
	}
	return set, nil
}

// betweenSelection returns everyone on a descent line between the two
// named people and any of their common ancestors.
func betweenSelection(ctx context.Context, result *pipeline.Result, name1, name2 string) (relate.Set, error) {
	p1, err := resolvePerson(ctx, result, name1)
	if err != nil {
		return nil, err
	}
	p2, err := resolvePerson(ctx, result, name2)
	if err != nil {
		return nil, err
	}

	rels, err := relate.Relationships(p1, p2, traversalOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	return relate.Participants(rels), nil
}

// dnaSelection returns the minimal subgraph connecting the home person to
// every DNA match. The home marker is required for this mode.
func dnaSelection(ctx context.Context, result *pipeline.Result) (relate.Set, error) {
	cfg := configFromContext(ctx)
	if result.Home == nil {
		return nil, errors.New(errors.ErrCodeInvariant,
			"--dna needs a home person; mark one with the %q prefix", cfg.Markers.Home)
	}
	if len(result.Matches) == 0 {
		return nil, errors.New(errors.ErrCodeInvariant,
			"--dna needs at least one match marked with the %q prefix", cfg.Markers.Match)
	}
	return relate.MatchSubgraph(result.Home, result.Matches, traversalOptions(ctx)...)
}

// traversalOptions applies the configured step budget to line walks.
func traversalOptions(ctx context.Context) []relate.Option {
	cfg := configFromContext(ctx)
	return []relate.Option{relate.WithMaxSteps(cfg.Limits.TraversalSteps)}
}
