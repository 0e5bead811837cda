// Package pedigree builds a bidirectional person graph from lexed GEDCOM
// records.
//
// # Overview
//
// [Build] runs two passes over the top-level record list. The first pass
// collects every INDI record into a [Person] map keyed by its XRef; a
// repeated identifier is a construction error. The second pass scans
// each FAM record's immediate sub-records: HUSB and WIFE entries name
// parents, CHIL entries name children, and every (parent, child) pair
// within the same family unit is linked mutually, so that
// p ∈ child.Parents() exactly when child ∈ p.Children().
//
// # People
//
// A Person is a thin view over its originating record: name, sex and
// dates are resolved lazily through [gedcom.Record.Field], never copied
// out. Display names strip the GEDCOM surname slashes ("John /Doe/"
// becomes "John Doe"); any marker glyphs prefixed to the name are kept.
//
// # Lookups
//
// [Graph.FindByName] resolves an exact display name and
// [Graph.FindByPrefix] scans display-name prefixes, both matching the
// original file's reading of names. [Graph.Home] enforces that exactly
// one person carries the home marker; [Graph.Matches] collects everyone
// carrying the match marker.
//
// The graph is built once and never mutated afterwards. All traversal
// and analysis lives in the relate package.
package pedigree
