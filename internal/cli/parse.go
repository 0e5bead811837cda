package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/export"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output   string // output file path (stdout if empty)
	detailed bool   // include life years in node labels
	sel      selectionOpts
}

// newParseCmd creates the parse command. It reads a GEDCOM file, reports
// graph statistics, and exports the selected people as node/edge JSON.
func newParseCmd() *cobra.Command {
	opts := parseOpts{}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a GEDCOM file and export its graph as JSON",
		Long: `Parse a GEDCOM file into a pedigree graph and export it as node/edge JSON.

The export covers the whole file by default; the selection flags narrow it
to a connecting subgraph or the DNA-match subgraph.

Examples:
  gedcom parse family.ged                          # Whole file to stdout
  gedcom parse family.ged -o family.json           # Whole file to a file
  gedcom parse family.ged --between "Ann,Bob"      # Connecting subgraph
  gedcom parse family.ged --dna --relative-of Ann  # One branch of the DNA subgraph`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.sel.validate(false); err != nil {
				return err
			}
			return runParse(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include birth and death years in labels")
	addSelectionFlags(cmd, &opts.sel)

	return cmd
}

// runParse parses the file, prints statistics, and writes the export.
func runParse(ctx context.Context, path string, opts *parseOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	result, err := runPipeline(ctx, path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d people with %d parent links", result.Stats.PersonCount, result.Stats.LinkCount))

	set, err := resolveSelection(ctx, result, &opts.sel)
	if err != nil {
		return err
	}

	g := export.FromPeople(set.People(), export.Options{Detailed: opts.detailed || configFromContext(ctx).Render.Detailed})

	// Stats go to stdout only when the JSON does not.
	if opts.output != "" {
		printSuccess("Parsed %s", path)
		printStats(len(g.Nodes), len(g.Edges))
	}

	if err := writeGraph(g, opts.output, logger); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
		printNextStep("Render it", fmt.Sprintf("gedcom render %s", opts.output))
	}
	return nil
}

// writeGraph serializes g as JSON to the specified path (or stdout if empty).
// The logger is notified on success with the output path.
func writeGraph(g export.Graph, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.WriteJSON(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
