// Package pkg provides the core libraries for GEDCOM pedigree analysis.
//
// # Overview
//
// The gedcom tool reads GEDCOM genealogy exports, builds a graph of people
// connected by parent/child links, and answers relationship questions about
// them. The pkg directory is organized into four main areas:
//
//  1. [gedcom] + [pedigree] - Domain logic (lexing, graph construction)
//  2. [relate] - Analysis (closures, ancestry lines, relationship search)
//  3. [export] + [render] - Output (JSON graphs, DOT/SVG/PDF/PNG charts)
//  4. [pipeline] - Orchestration (lex → build → mark) used by every command
//
// # Architecture
//
// The typical data flow:
//
//	GEDCOM file
//	     ↓
//	[gedcom] package (lex level-numbered lines into nested records)
//	     ↓
//	[pedigree] package (people, parent links, marker lookup)
//	     ↓
//	[relate] package (set algebra + traversals over the graph)
//	     ↓
//	[export] / [render] packages (JSON, DOT, SVG, PDF, PNG)
//
// # Quick Start
//
// Load a file and chart the home person's ancestry:
//
//	import (
//	    "github.com/sligocki/gedcom/pkg/export"
//	    "github.com/sligocki/gedcom/pkg/gedcom"
//	    "github.com/sligocki/gedcom/pkg/pedigree"
//	    "github.com/sligocki/gedcom/pkg/relate"
//	    "github.com/sligocki/gedcom/pkg/render"
//	)
//
//	// 1. Lex the file into records
//	records, _ := gedcom.LexFile("family.ged")
//
//	// 2. Build the pedigree graph
//	g, _ := pedigree.Build(records)
//
//	// 3. Find the home person and their ancestors
//	home, _ := g.Home(pedigree.HomeMarker)
//	ancestors := relate.Ancestors(home)
//
//	// 4. Render to SVG
//	chart := export.FromPeople(ancestors.People(), export.Options{})
//	svg, _ := render.RenderSVG(render.ToDOT(chart, render.Options{}))
//
// # Main Packages
//
// ## Domain
//
// [gedcom] - Line-level GEDCOM lexer. Parses "LEVEL [@ID@] TAG [VALUE]" lines
// into a forest of nested records and rejects malformed levels early. Knows
// nothing about people; higher layers interpret the tags.
//
// [pedigree] - The pedigree graph. Builds Person nodes from INDI records and
// parent/child links from FAM records, resolves people by exact display name
// or prefix, and locates the home person and DNA matches by their name
// markers (🏠 and 🔬 by default).
//
// ## Analysis
//
// [relate] - Set algebra and traversals: ancestor/descendant closures,
// connected relatives, most recent common ancestors, complete ancestry lines,
// Ahnentafel numbering, root finding, and the DNA-match subgraph connecting a
// home person to marked matches. All traversals are cycle-safe and bounded by
// a step limit.
//
// ## Output
//
// [export] - Serialization types for person graphs (JSON node-link format).
// Exported files round-trip back into the render pipeline, so an expensive
// selection can be computed once and re-rendered many times.
//
// [render] - Chart rendering. Converts exported graphs to Graphviz DOT and
// renders SVG in-process via [goccy/go-graphviz]; PDF and PNG convert from
// SVG through rsvg-convert.
//
// ## Orchestration
//
// [pipeline] - The shared lex → build → mark pipeline behind every CLI
// command. Produces the graph plus the resolved home person, DNA matches,
// and timing stats in one call.
//
// ## Support
//
// [config] - TOML configuration (markers, traversal limits, render defaults)
// with an XDG-style search path.
//
// [errors] - Coded errors distinguishing user mistakes (bad input, unknown
// person) from internal failures, plus input validation helpers.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Common Workflows
//
// Find how two people are related:
//
//	p1, _ := g.FindByName("Ada Lovelace")
//	p2, _ := g.FindByName("Charles Babbage")
//	rels, _ := relate.Relationships(p1, p2)
//	for _, rel := range rels {
//	    fmt.Println(rel.Ancestor) // shared ancestor, lines in rel.Lines1/Lines2
//	}
//
// Work out which ancestors connect the home person to DNA matches:
//
//	home, _ := g.Home(pedigree.HomeMarker)
//	matches := g.Matches(pedigree.MatchMarker)
//	set, _ := relate.MatchSubgraph(home, matches)
//
// Export a selection and re-render it later:
//
//	chart := export.FromPeople(set.People(), export.Options{Detailed: true})
//	_ = export.ExportJSON(chart, "dna.json")
//	chart, _ = export.ImportJSON("dna.json")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/relate/...        # Specific package
//	go test -run Example            # Examples only
//
// [gedcom]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/gedcom
// [pedigree]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/pedigree
// [relate]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/relate
// [export]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/export
// [render]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/config
// [errors]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/sligocki/gedcom/pkg/buildinfo
// [goccy/go-graphviz]: https://pkg.go.dev/github.com/goccy/go-graphviz
package pkg
