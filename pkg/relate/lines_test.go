package relate

import (
	"testing"

	"github.com/sligocki/gedcom/pkg/errors"
)

func TestAncestorLines_Diamond(t *testing.T) {
	// D reaches X via A and via B: exactly two distinct lines, even
	// though X is a single ancestor. A visited-set traversal would
	// report only one.
	g := buildGraph(t, diamondGED)

	lines, err := AncestorLines(person(t, g, "@D@"))
	if err != nil {
		t.Fatalf("AncestorLines() error: %v", err)
	}

	toX := lines["@X@"]
	if len(toX) != 2 {
		t.Fatalf("lines to @X@ = %d, want 2", len(toX))
	}

	want := map[string]bool{
		"@D@ @A@ @X@": false,
		"@D@ @B@ @X@": false,
	}
	for _, line := range toX {
		key := ""
		for i, id := range lineIDs(line) {
			if i > 0 {
				key += " "
			}
			key += id
		}
		seen, ok := want[key]
		if !ok {
			t.Errorf("unexpected line %v", lineIDs(line))
			continue
		}
		if seen {
			t.Errorf("line %v reported twice", lineIDs(line))
		}
		want[key] = true
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("line %q missing", key)
		}
	}
}

func TestAncestorLines_PersonFirstOrder(t *testing.T) {
	g := buildGraph(t, cousinsGED)

	lines, err := AncestorLines(person(t, g, "@C1@"))
	if err != nil {
		t.Fatalf("AncestorLines() error: %v", err)
	}

	toG1 := lines["@G1@"]
	if len(toG1) != 1 {
		t.Fatalf("lines to @G1@ = %d, want 1", len(toG1))
	}
	got := lineIDs(toG1[0])
	want := []string{"@C1@", "@P1@", "@G1@"}
	if len(got) != len(want) {
		t.Fatalf("line = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line = %v, want %v", got, want)
		}
	}
}

func TestAncestorLines_SelfLine(t *testing.T) {
	g := buildGraph(t, cousinsGED)

	lines, err := AncestorLines(person(t, g, "@C1@"))
	if err != nil {
		t.Fatalf("AncestorLines() error: %v", err)
	}
	self := lines["@C1@"]
	if len(self) != 1 || len(self[0]) != 1 || self[0][0].ID() != "@C1@" {
		t.Errorf("self line = %v, want the single-person line [@C1@]", self)
	}
}

func TestAncestorLines_AncestorsMatchClosure(t *testing.T) {
	// The key set of the line map is exactly the ancestor closure.
	g := buildGraph(t, diamondGED)
	p := person(t, g, "@D@")

	lines, err := AncestorLines(p)
	if err != nil {
		t.Fatalf("AncestorLines() error: %v", err)
	}

	closure := Ancestors(p)
	reached := lines.Ancestors()
	wantIDs(t, reached.Intersect(closure), closure.IDs()...)
	if len(reached) != len(closure) {
		t.Errorf("lines reach %d ancestors, closure has %d", len(reached), len(closure))
	}
}

func TestAncestorLines_CycleDetected(t *testing.T) {
	g := buildGraph(t, loopGED)

	_, err := AncestorLines(person(t, g, "@I1@"))
	if err == nil {
		t.Fatal("AncestorLines() succeeded on a parent/child loop")
	}
	if !errors.Is(err, errors.ErrCodeCycle) {
		t.Errorf("error code = %s, want CYCLE_DETECTED", errors.GetCode(err))
	}
}

func TestAncestorLines_StepBudget(t *testing.T) {
	g := buildGraph(t, cousinsGED)

	_, err := AncestorLines(person(t, g, "@C1@"), WithMaxSteps(2))
	if err == nil {
		t.Fatal("AncestorLines() succeeded, want step budget error")
	}
	if !errors.Is(err, errors.ErrCodeTraversalLimit) {
		t.Errorf("error code = %s, want TRAVERSAL_LIMIT", errors.GetCode(err))
	}
}
