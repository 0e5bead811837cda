// Package pipeline runs the processing stages shared by every entry
// point: lex the GEDCOM file, build the person graph, resolve marked
// people. CLI commands and the preview server both go through it, so
// behavior and logging stay consistent.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Lex: read the file into a hierarchical record list
//  2. Build: construct the bidirectional person graph
//  3. Resolve: locate the marked home person and DNA matches
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Path:        "family.ged",
//	    HomeMarker:  pedigree.HomeMarker,
//	    MatchMarker: pedigree.MatchMarker,
//	})
//	if err != nil {
//	    return err
//	}
//	people := result.Graph.People()
package pipeline

import (
	"time"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Options configures one pipeline run.
type Options struct {
	// Path is the GEDCOM file to read.
	Path string

	// HomeMarker is the glyph marking the home person. Empty skips
	// home resolution. A file where several people carry the glyph is
	// rejected; a file where nobody does leaves Result.Home nil, and
	// commands that need a home person report that themselves.
	HomeMarker string

	// MatchMarker is the glyph marking DNA matches. Empty skips match
	// collection.
	MatchMarker string
}

// validate checks required fields and marker well-formedness.
func (o Options) validate() error {
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	for _, marker := range []string{o.HomeMarker, o.MatchMarker} {
		if marker == "" {
			continue
		}
		if err := errors.ValidateMarker(marker); err != nil {
			return err
		}
	}
	if o.HomeMarker != "" && o.HomeMarker == o.MatchMarker {
		return errors.New(errors.ErrCodeInvalidInput, "home and match markers must differ")
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the person graph built from the file.
	Graph *pedigree.Graph

	// Home is the person carrying the home marker, nil when the file
	// has none or no marker was configured.
	Home *pedigree.Person

	// Matches are the people carrying the match marker, in file order.
	Matches []*pedigree.Person

	// Stats contains counts and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int // top-level records lexed, families included
	PersonCount int // individuals in the graph
	LinkCount   int // parent/child links
	LexTime     time.Duration
	BuildTime   time.Duration
}
