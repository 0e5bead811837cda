package export

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// Node is one person in flattened form: identifier plus display label.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Edge is one parent-to-child link between two nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a flattened person subset. Nodes are sorted by identifier
// and edges keep only links internal to the subset, so two graphs
// built from the same people compare equal.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Options adjusts how people are flattened.
type Options struct {
	// Detailed extends labels with birth and death years.
	Detailed bool
}

// FromPeople projects a person subset onto nodes and edges. Every
// person becomes one node; every parent/child link with both ends in
// the subset becomes one edge, directed parent to child. Input order
// does not matter.
func FromPeople(people []*pedigree.Person, opts Options) Graph {
	sorted := make([]*pedigree.Person, len(people))
	copy(sorted, people)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })

	in := make(map[string]bool, len(sorted))
	for _, p := range sorted {
		in[p.ID()] = true
	}

	g := Graph{Nodes: make([]Node, 0, len(sorted))}
	for _, p := range sorted {
		label := p.Name()
		if opts.Detailed {
			label = p.String()
		}
		g.Nodes = append(g.Nodes, Node{ID: p.ID(), Label: label})

		for _, parent := range p.Parents() {
			if in[parent.ID()] {
				g.Edges = append(g.Edges, Edge{From: parent.ID(), To: p.ID()})
			}
		}
	}
	return g
}

// WriteJSON encodes the graph as indented JSON on w. The output
// re-imports with [ReadJSON] for round-trip processing.
func WriteJSON(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// ExportJSON writes the graph to a JSON file at path.
func ExportJSON(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ReadJSON decodes a graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "@I1@", "label": "John Doe"}],
//	  "edges": [{"from": "@I2@", "to": "@I1@"}]
//	}
//
// Every node needs a non-empty identifier, identifiers must be unique
// (DUPLICATE_ID otherwise), and every edge must reference declared
// nodes (UNKNOWN_ID otherwise). ReadJSON does not close r.
func ReadJSON(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph")
	}

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return Graph{}, errors.New(errors.ErrCodeInvalidInput, "node without id")
		}
		if ids[n.ID] {
			return Graph{}, errors.New(errors.ErrCodeDuplicateID, "duplicate node %s", n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		for _, id := range [...]string{e.From, e.To} {
			if !ids[id] {
				return Graph{}, errors.New(errors.ErrCodeUnknownID,
					"edge %s->%s references unknown node %s", e.From, e.To, id)
			}
		}
	}
	return g, nil
}

// ImportJSON reads and validates the JSON graph file at path.
func ImportJSON(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
