package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/relate"
)

// ahnentafelOpts holds the command-line flags for the ahnentafel command.
type ahnentafelOpts struct {
	of    string // subject of the listing (home person if empty)
	limit int    // number of entries to print, 0 for all
}

// newAhnentafelCmd creates the ahnentafel command, the classic numbered
// ancestor listing: the subject is 1, the father of n is 2n, the mother
// 2n+1. Missing ancestors leave their number unprinted.
func newAhnentafelCmd() *cobra.Command {
	opts := ahnentafelOpts{}

	cmd := &cobra.Command{
		Use:   "ahnentafel <file>",
		Short: "Print a numbered ancestor listing",
		Long: `Print an ahnentafel, the classic numbered ancestor listing.

The subject is entry 1, the father of entry n is 2n and the mother 2n+1,
so every number pins an ancestor to an exact position in the tree.
Ancestors missing from the file leave their numbers out.

Examples:
  gedcom ahnentafel family.ged
  gedcom ahnentafel family.ged --of "Ann Smith"
  gedcom ahnentafel family.ged --limit 31        # four generations`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAhnentafel(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.of, "of", "", "subject of the listing (default: the home person)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "print at most this many entries (0 for all)")

	return cmd
}

func runAhnentafel(ctx context.Context, path string, opts *ahnentafelOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}
	p, err := resolvePerson(ctx, result, opts.of)
	if err != nil {
		return err
	}

	entries, err := relate.Ahnentafel(p, traversalOptions(ctx)...)
	if err != nil {
		return err
	}

	shown := entries
	if opts.limit > 0 && opts.limit < len(entries) {
		shown = entries[:opts.limit]
	}

	printInfo("Ahnentafel of %s, %d of %d entries", p.Name(), len(shown), len(entries))
	for _, e := range shown {
		printDetail("%4d. %s", e.Number, e.Person)
	}
	return nil
}
