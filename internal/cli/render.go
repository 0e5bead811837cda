package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/export"
	"github.com/sligocki/gedcom/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"

	// pngScale doubles the raster resolution so chart text stays legible.
	pngScale = 2.0
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (derived from input if empty)
	format   string // output format: dot, svg, png, pdf
	detailed bool   // include life years in node labels
	sel      selectionOpts
}

// newRenderCmd creates the render command for generating pedigree charts.
// It accepts either a GEDCOM file (with selection flags) or a previously
// exported node/edge JSON file, and writes DOT, SVG, PNG, or PDF output.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a pedigree chart",
		Long: `Render a pedigree chart from a GEDCOM file or an exported JSON graph.

GEDCOM input requires exactly one selection mode (--all, --between, or
--dna); the home person and DNA matches are highlighted in the chart.
JSON input is rendered as-is, so a subgraph exported by parse, relate, or
dna can be re-rendered without reparsing.

Examples:
  gedcom render family.ged --all
  gedcom render family.ged --dna -f png -o matches.png
  gedcom render family.ged --between "Ann,Bob" --detailed
  gedcom render dna.json -f pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = configFromContext(c.Context()).Render.Format
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png, pdf (default from config)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include birth and death years in labels")
	addSelectionFlags(cmd, &opts.sel)

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true, formatPDF: true}

// validateFormat checks that the requested format is supported.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'dot', 'svg', 'png', or 'pdf')", format)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the graph, converts it to DOT, renders the requested
// format, and writes the result.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	g, highlight, err := loadRenderGraph(ctx, input, opts)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	dot := render.ToDOT(g, render.Options{Highlight: highlight})

	var data []byte
	if opts.format == formatDOT {
		data = []byte(dot)
	} else {
		sp := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.format))
		sp.Start()
		data, err = renderFormat(dot, opts.format)
		if err != nil {
			sp.StopWithError(fmt.Sprintf("Rendering %s failed", opts.format))
			return err
		}
		sp.Stop()
		if sp.Cancelled() {
			return ctx.Err()
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + opts.format
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	printSuccess("Rendered %d people", len(g.Nodes))
	printFile(outputPath)
	return nil
}

// loadRenderGraph builds the export graph from either kind of input file.
// For GEDCOM input it applies the selection flags and returns the home
// person and DNA matches as highlight ids; JSON input carries no markers.
func loadRenderGraph(ctx context.Context, input string, opts *renderOpts) (export.Graph, []string, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		if opts.sel.modes() > 0 || opts.sel.relativeOf != "" {
			return export.Graph{}, nil, errors.New(errors.ErrCodeInvalidInput,
				"selection flags apply to GEDCOM input; %s is already a selection", input)
		}
		g, err := export.ImportJSON(input)
		return g, nil, err
	}

	if err := opts.sel.validate(true); err != nil {
		return export.Graph{}, nil, err
	}

	result, err := runPipeline(ctx, input)
	if err != nil {
		return export.Graph{}, nil, err
	}
	set, err := resolveSelection(ctx, result, &opts.sel)
	if err != nil {
		return export.Graph{}, nil, err
	}

	detailed := opts.detailed || configFromContext(ctx).Render.Detailed
	g := export.FromPeople(set.People(), export.Options{Detailed: detailed})

	var highlight []string
	if result.Home != nil {
		highlight = append(highlight, result.Home.ID())
	}
	for _, m := range result.Matches {
		highlight = append(highlight, m.ID())
	}
	return g, highlight, nil
}

// renderFormat converts the DOT source to the requested format.
func renderFormat(dot, format string) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return render.RenderSVG(dot)
	case formatPNG:
		return render.RenderPNG(dot, pngScale)
	case formatPDF:
		return render.RenderPDF(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}
