package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/gedcom"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Runner executes the pipeline. It is stateless apart from the logger;
// multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner logging through the given logger, or the
// default logger when nil.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run executes lex, build, and resolve for one input file.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	lexStart := time.Now()
	records, err := gedcom.LexFile(opts.Path)
	if err != nil {
		return nil, err
	}
	result.Stats.RecordCount = len(records)
	result.Stats.LexTime = time.Since(lexStart)

	r.Logger.Info("lexed records",
		"path", opts.Path,
		"records", len(records),
		"duration", result.Stats.LexTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buildStart := time.Now()
	graph, err := pedigree.Build(records)
	if err != nil {
		return nil, err
	}
	result.Graph = graph
	result.Stats.PersonCount = graph.Len()
	result.Stats.LinkCount = graph.Links()
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built graph",
		"people", result.Stats.PersonCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.BuildTime)

	if err := r.resolve(result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// resolve locates marked people. The home marker must sit on at most
// one person; more is a broken file, none is fine here.
func (r *Runner) resolve(result *Result, opts Options) error {
	if opts.HomeMarker != "" {
		carriers := result.Graph.Marked(opts.HomeMarker)
		switch len(carriers) {
		case 0:
			r.Logger.Debug("no home person marked", "marker", opts.HomeMarker)
		case 1:
			result.Home = carriers[0]
			r.Logger.Debug("resolved home person", "person", result.Home.Name())
		default:
			return errors.New(errors.ErrCodeInvariant,
				"%d people carry the home marker %q, want exactly 1", len(carriers), opts.HomeMarker)
		}
	}

	if opts.MatchMarker != "" {
		result.Matches = result.Graph.Matches(opts.MatchMarker)
		if len(result.Matches) > 0 {
			r.Logger.Debug("resolved DNA matches", "count", len(result.Matches))
		}
	}
	return nil
}
