// Package relate answers ancestry questions over a built pedigree
// graph: ancestor and descendant closures, common-ancestor discovery,
// full ancestor-line enumeration and two-person relationship paths.
//
// # Closures
//
// [Ancestors] and [Descendants] compute transitive closures over the
// parent and child edges with an iterative breadth-first walk and a
// visited set, so densely intermarried pedigrees cost O(V+E) rather
// than exploding exponentially, and a malformed cyclic graph cannot
// loop. Both closures include the query person.
//
// # Common ancestors
//
// [CommonAncestors] intersects two ancestor closures. [MostRecent]
// keeps only the frontier of a candidate set: the members none of
// whose children are also candidates. [MRCA] chains the two.
//
// # Lines and relationships
//
// [AncestorLines] enumerates every distinct parent-path from a person
// to each ancestor. Pedigree collapse (a relative married a relative)
// makes one ancestor reachable along several genuinely different
// lines, so this traversal must not prune with a visited set; instead
// it guards against bad data with a per-line cycle check and a total
// step budget. [Relationships] pairs the lines of two people through
// each of their most recent common ancestors, one entry per MRCA, so
// double cousins report both connections.
//
// # Filters
//
// [Roots] finds the brick-wall ancestors of a set, [Frontier] expands
// a set one generation past a filter while flagging incompletely
// recorded parents, [MatchSubgraph] cuts the minimal subgraph linking
// a home person to a collection of DNA matches, and [FilterRelatives]
// restricts a set to the blood relatives of one person.
//
// All sets and caches key by person identifier, never by pointer, so
// results are comparable across graphs rebuilt from the same input.
package relate
