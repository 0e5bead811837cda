package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/export"
	"github.com/sligocki/gedcom/pkg/relate"
)

// relateOpts holds the command-line flags for the relate command.
type relateOpts struct {
	output string // JSON export of the connecting subgraph (skipped if empty)
}

// newRelateCmd creates the relate command. It explains how two people are
// related: one block per shared most recent common ancestor, with every
// descent line from each person up to that ancestor.
func newRelateCmd() *cobra.Command {
	opts := relateOpts{}

	cmd := &cobra.Command{
		Use:   "relate <file> <name> [name]",
		Short: "Show how two people are related",
		Long: `Show how two people are related through their shared ancestors.

Each shared most recent common ancestor is listed with every descent line
from both people up to that ancestor. With one name the home person is the
other side of the comparison.

Examples:
  gedcom relate family.ged "Ann Smith"                # home person vs Ann
  gedcom relate family.ged "Ann Smith" "Bob Jones"
  gedcom relate family.ged Ann Bob -o related.json    # export the subgraph`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(c *cobra.Command, args []string) error {
			// With a single name the home person fills the first slot.
			name1, name2 := "", args[1]
			if len(args) == 3 {
				name1, name2 = args[1], args[2]
			}
			return runRelate(c.Context(), args[0], name1, name2, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the connecting subgraph as JSON")

	return cmd
}

func runRelate(ctx context.Context, path, name1, name2 string, opts *relateOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}

	p1, err := resolvePerson(ctx, result, name1)
	if err != nil {
		return err
	}
	p2, err := resolvePerson(ctx, result, name2)
	if err != nil {
		return err
	}

	rels, err := relate.Relationships(p1, p2, traversalOptions(ctx)...)
	if err != nil {
		return err
	}
	if len(rels) == 0 {
		printWarning("No shared ancestor between %s and %s", p1.Name(), p2.Name())
		return nil
	}

	printInfo("%d shared ancestor(s) between %s and %s", len(rels), p1.Name(), p2.Name())
	for _, rel := range rels {
		printNewline()
		printKeyValue("ancestor", rel.Ancestor.String())
		for _, line := range rel.Lines1 {
			printDetail("%s", lineString(line))
		}
		for _, line := range rel.Lines2 {
			printDetail("%s", lineString(line))
		}
	}

	if opts.output != "" {
		g := export.FromPeople(relate.Participants(rels).People(), export.Options{})
		if err := writeGraph(g, opts.output, loggerFromContext(ctx)); err != nil {
			return err
		}
		printNewline()
		printFile(opts.output)
	}
	return nil
}
