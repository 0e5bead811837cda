package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/pedigree"
	"github.com/sligocki/gedcom/pkg/relate"
)

// closureOpts holds the flags shared by the ancestors and descendants
// commands.
type closureOpts struct {
	of    string // person to query (home person if empty)
	lines bool   // list every distinct descent line per ancestor
}

// newAncestorsCmd creates the ancestors command.
func newAncestorsCmd() *cobra.Command {
	opts := closureOpts{}

	cmd := &cobra.Command{
		Use:   "ancestors <file>",
		Short: "List every ancestor of a person",
		Long: `List every ancestor of a person, the person included.

With --lines each ancestor is followed by every distinct descent line
leading to them, so ancestors reached along several branches (pedigree
collapse) show up once per branch.

Examples:
  gedcom ancestors family.ged                    # Ancestors of the home person
  gedcom ancestors family.ged --of "Ann Smith"
  gedcom ancestors family.ged --of Ann --lines`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAncestors(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.of, "of", "", "person to query (default: the home person)")
	cmd.Flags().BoolVar(&opts.lines, "lines", false, "show every distinct descent line per ancestor")

	return cmd
}

// newDescendantsCmd creates the descendants command.
func newDescendantsCmd() *cobra.Command {
	opts := closureOpts{}

	cmd := &cobra.Command{
		Use:   "descendants <file>",
		Short: "List every descendant of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDescendants(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.of, "of", "", "person to query (default: the home person)")

	return cmd
}

func runAncestors(ctx context.Context, path string, opts *closureOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}
	p, err := resolvePerson(ctx, result, opts.of)
	if err != nil {
		return err
	}

	if opts.lines {
		return printAncestorLines(ctx, p)
	}

	set := relate.Ancestors(p)
	printInfo("%d people in the ancestry of %s", len(set), p.Name())
	for _, a := range set.People() {
		printDetail("%s", a)
	}
	return nil
}

func runDescendants(ctx context.Context, path string, opts *closureOpts) error {
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}
	p, err := resolvePerson(ctx, result, opts.of)
	if err != nil {
		return err
	}

	set := relate.Descendants(p)
	printInfo("%d people in the descendancy of %s", len(set), p.Name())
	for _, d := range set.People() {
		printDetail("%s", d)
	}
	return nil
}

// printAncestorLines lists each ancestor with every descent line leading
// to them.
func printAncestorLines(ctx context.Context, p *pedigree.Person) error {
	ls, err := relate.AncestorLines(p, traversalOptions(ctx)...)
	if err != nil {
		return err
	}

	ancestors := ls.Ancestors()
	printInfo("%d people in the ancestry of %s", len(ancestors), p.Name())
	for _, a := range ancestors.People() {
		printDetail("%s", a)
		for _, line := range ls[a.ID()] {
			printDetail("  %s", lineString(line))
		}
	}
	return nil
}

// lineString formats a descent line as the names along it, person first.
func lineString(line relate.Line) string {
	names := make([]string, len(line))
	for i, p := range line {
		names[i] = p.Name()
	}
	return strings.Join(names, " "+iconArrow+" ")
}
