package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/export"
	"github.com/sligocki/gedcom/pkg/relate"
)

// dnaOpts holds the command-line flags for the dna command.
type dnaOpts struct {
	relativeOf string // restrict the subgraph to one relative's branch
	output     string // JSON export of the subgraph (skipped if empty)
}

// newDNACmd creates the dna command. It reports the minimal subgraph
// connecting the home person to every marked DNA match, then lists where
// that subgraph hits documented brick walls and undocumented parents,
// which is where the shared DNA most likely came from.
func newDNACmd() *cobra.Command {
	opts := dnaOpts{}

	cmd := &cobra.Command{
		Use:   "dna <file>",
		Short: "Summarize the subgraph connecting the home person to DNA matches",
		Long: `Summarize the subgraph connecting the home person to every DNA match.

The file must mark exactly one home person and at least one match. The
report lists each match, the people on the connecting lines, the roots of
the subgraph, and every person along its edge whose parents are not fully
recorded.

Examples:
  gedcom dna family.ged
  gedcom dna family.ged --relative-of "Grandpa Smith"
  gedcom dna family.ged -o dna.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDNA(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.relativeOf, "relative-of", "", "keep only the branch through this blood relative")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the subgraph as JSON")

	return cmd
}

func runDNA(ctx context.Context, path string, opts *dnaOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}

	cfg := configFromContext(ctx)
	if result.Home == nil {
		return errors.New(errors.ErrCodeInvariant,
			"no home person; mark one with the %q prefix", cfg.Markers.Home)
	}
	if len(result.Matches) == 0 {
		return errors.New(errors.ErrCodeInvariant,
			"no DNA matches; mark them with the %q prefix", cfg.Markers.Match)
	}

	set, err := relate.MatchSubgraph(result.Home, result.Matches, traversalOptions(ctx)...)
	if err != nil {
		return err
	}

	printInfo("%d people connect %s to %d DNA matches", len(set), StyleHighlight.Render(result.Home.Name()), len(result.Matches))
	for _, m := range result.Matches {
		if set.Has(m) {
			printDetail("%s", m)
		} else {
			printDetail("%s (no documented connection)", m)
		}
	}

	if opts.relativeOf != "" {
		anchor, err := resolvePerson(ctx, result, opts.relativeOf)
		if err != nil {
			return err
		}
		set = relate.FilterRelatives(set, anchor)
		printNewline()
		printInfo("%d people on the branch through %s", len(set), anchor.Name())
	}

	roots := relate.Roots(set)
	printNewline()
	printInfo("%d roots", len(roots))
	for _, r := range roots.People() {
		printDetail("%s", r)
	}

	// Everywhere the subgraph borders on people the file does not document.
	_, gaps := relate.Frontier(set, set)
	if len(gaps) > 0 {
		printNewline()
		printWarning("%d people with incomplete parentage", len(gaps))
		for _, gap := range gaps {
			printDetail("%s", gap)
		}
	}

	if opts.output != "" {
		g := export.FromPeople(set.People(), export.Options{})
		if err := writeGraph(g, opts.output, loggerFromContext(ctx)); err != nil {
			return err
		}
		printNewline()
		printFile(opts.output)
	}
	return nil
}
