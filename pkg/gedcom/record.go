package gedcom

// Record is one parsed GEDCOM line together with its nested lines.
// Records form a tree whose shape mirrors the level numbers of the
// input. A Record is built once during lexing and never modified
// afterwards.
type Record struct {
	// XRef is the cross-reference identifier (e.g. "@I138@" or "@F31@").
	// It is set only on entity-introducing lines and empty otherwise.
	XRef string

	// Tag names the record type (e.g. "INDI", "FAM", "NAME", "DATE").
	Tag string

	// Data is the free-text payload following the tag. For family
	// membership records (HUSB, WIFE, CHIL) it holds the referenced
	// individual's XRef.
	Data string

	// Subs are the nested records in input order.
	Subs []*Record
}

// Field descends the sub-record tree along the given tag path and
// returns the payload of the final matched record. At every segment the
// first sub-record with a matching tag is followed; later siblings are
// not tried. The boolean is false when any segment is unmatched, which
// is a normal outcome for optional fields (an unknown birth date, say),
// not an error.
//
//	date, ok := rec.Field("BIRT", "DATE")
func (r *Record) Field(path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	for _, sub := range r.Subs {
		if sub.Tag != path[0] {
			continue
		}
		if len(path) == 1 {
			return sub.Data, true
		}
		return sub.Field(path[1:]...)
	}
	return "", false
}
