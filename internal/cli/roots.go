package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/relate"
)

// rootsOpts holds the command-line flags for the roots command.
type rootsOpts struct {
	of  string // person whose ancestry to scan (home person if empty)
	all bool   // scan the whole file instead of one ancestry
}

// newRootsCmd creates the roots command. Roots are the people with no
// recorded parents inside the queried set, the brick walls genealogy
// research runs into.
func newRootsCmd() *cobra.Command {
	opts := rootsOpts{}

	cmd := &cobra.Command{
		Use:   "roots <file>",
		Short: "List brick-wall ancestors with no recorded parents",
		Long: `List the roots of an ancestry: people none of whose recorded parents
appear in the queried set. These are the research brick walls.

By default the home person's ancestry is scanned; --of picks someone
else, --all scans the whole file.

Examples:
  gedcom roots family.ged
  gedcom roots family.ged --of "Ann Smith"
  gedcom roots family.ged --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if opts.all && opts.of != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--all and --of are mutually exclusive")
			}
			return runRoots(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.of, "of", "", "person whose ancestry to scan (default: the home person)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "scan every person in the file")

	return cmd
}

func runRoots(ctx context.Context, path string, opts *rootsOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}

	var set relate.Set
	if opts.all {
		set = relate.NewSet(result.Graph.People()...)
		printInfo("Scanning all %d people", len(set))
	} else {
		p, err := resolvePerson(ctx, result, opts.of)
		if err != nil {
			return err
		}
		set = relate.Ancestors(p)
		printInfo("Scanning the ancestry of %s, %d people", p.Name(), len(set))
	}

	roots := relate.Roots(set)
	printInfo("%d roots", len(roots))
	for _, r := range roots.People() {
		printDetail("%s", r)
	}
	return nil
}
