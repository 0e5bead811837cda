// Package gedcom provides a line-oriented lexer for GEDCOM genealogy
// exports, producing a generic tree of tagged records.
//
// # Overview
//
// A GEDCOM file is a sequence of lines of the form
//
//	level [@xref@] TAG data...
//
// where level is a non-negative nesting depth, the optional @xref@ token
// is a cross-reference identifier present only on entity-introducing
// lines (individuals, families), TAG names the record type, and the rest
// of the line is free text. Nesting is encoded purely by the level
// numbers: a line at level n is a sub-record of the most recent line at
// level n-1.
//
// # Lexing
//
// Use [Lex] to parse a stream, or [LexFile] for a file path:
//
//	records, err := gedcom.LexFile("family.ged")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The result is the ordered list of top-level (level 0) records, each
// carrying its full sub-record tree. Lexing is a single forward pass:
// a chain of "most recent record per depth" is maintained, so no
// backtracking or re-parsing is ever needed.
//
// Malformed input is fatal: a line with too few tokens, a non-numeric
// or negative level, or a level that jumps more than one past the
// current depth aborts the lex with an error carrying the 1-based line
// number. No partial tree is returned.
//
// # Field Lookup
//
// Records are schema-free. Use [Record.Field] to descend a tag path and
// fetch a payload without knowing the full record layout:
//
//	birth, ok := rec.Field("BIRT", "DATE")
//
// A missing path segment is a normal outcome, reported by the boolean,
// never an error. Only the first sub-record matching each segment is
// followed.
//
// # Downstream
//
// This package knows nothing about people or families. The pedigree
// package interprets INDI and FAM records and builds the person graph.
package gedcom
