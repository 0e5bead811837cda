package pedigree

import (
	"fmt"
	"strings"

	"github.com/sligocki/gedcom/pkg/gedcom"
)

// Person is an individual derived from an INDI record, carrying the
// resolved parent/child edges of the pedigree graph. Name, sex and
// dates are read lazily from the originating record on each call.
//
// A Person is created by [Build] and immutable once Build returns.
type Person struct {
	id       string
	record   *gedcom.Record
	parents  []*Person
	children []*Person
}

// ID returns the person's cross-reference identifier (e.g. "@I138@").
// Identifiers are unique across the graph and stable across rebuilds of
// the same input, so they are the canonical key for sets and caches.
func (p *Person) ID() string { return p.id }

// Record returns the underlying INDI record for arbitrary field lookups
// beyond the accessors below (occupation, burial place, ...).
func (p *Person) Record() *gedcom.Record { return p.record }

// RawName returns the NAME payload exactly as written, including the
// surname slashes and any marker glyphs. Empty if no NAME record exists.
func (p *Person) RawName() string {
	name, _ := p.record.Field("NAME")
	return name
}

// Name returns the display name: the NAME payload with the surname
// slashes removed. "John /Doe/" becomes "John Doe". Marker glyphs
// prefixed to the name are left in place.
func (p *Person) Name() string {
	return strings.ReplaceAll(p.RawName(), "/", "")
}

// Sex returns the SEX code ("M", "F", ...) if recorded.
func (p *Person) Sex() (string, bool) {
	return p.record.Field("SEX")
}

// BirthDate returns the raw BIRT.DATE payload if recorded.
func (p *Person) BirthDate() (string, bool) {
	return p.record.Field("BIRT", "DATE")
}

// DeathDate returns the raw DEAT.DATE payload if recorded.
func (p *Person) DeathDate() (string, bool) {
	return p.record.Field("DEAT", "DATE")
}

// BirthYear returns the year of birth: the last whitespace-separated
// token of the birth date ("13 Dec 1985" yields "1985").
func (p *Person) BirthYear() (string, bool) {
	date, ok := p.BirthDate()
	return lastToken(date), ok
}

// DeathYear returns the year of death, per the same convention as
// [Person.BirthYear].
func (p *Person) DeathYear() (string, bool) {
	date, ok := p.DeathDate()
	return lastToken(date), ok
}

// Parents returns the person's parents in input order (the order of
// HUSB/WIFE lines in the family records). The slice is a read-only
// view; callers must not modify it.
func (p *Person) Parents() []*Person { return p.parents }

// Children returns the person's children in input order. The slice is
// a read-only view; callers must not modify it.
func (p *Person) Children() []*Person { return p.children }

// String formats the person as "Name (birthYear - deathYear)", with "?"
// standing in for unknown years: "John Doe (1985 - ?)".
func (p *Person) String() string {
	return fmt.Sprintf("%s (%s - %s)", p.Name(), yearOrUnknown(p.BirthYear()), yearOrUnknown(p.DeathYear()))
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func yearOrUnknown(year string, ok bool) string {
	if !ok || year == "" {
		return "?"
	}
	return year
}
