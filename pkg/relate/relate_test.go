package relate

import (
	"strings"
	"testing"

	"github.com/sligocki/gedcom/pkg/gedcom"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

// buildGraph lexes and builds a fixture graph in one step.
func buildGraph(t *testing.T, input string) *pedigree.Graph {
	t.Helper()
	records, err := gedcom.Lex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}
	g, err := pedigree.Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

// person fetches a fixture person by id, failing the test if absent.
func person(t *testing.T, g *pedigree.Graph, id string) *pedigree.Person {
	t.Helper()
	p, ok := g.Person(id)
	if !ok {
		t.Fatalf("fixture person %s not found", id)
	}
	return p
}

// trioGED is the minimal end-to-end fixture: I1 is the child of I2 and
// I3, who have no recorded parents of their own.
const trioGED = `0 @I1@ INDI
1 NAME Carl /Young/
0 @I2@ INDI
1 NAME Frank /Young/
1 SEX M
0 @I3@ INDI
1 NAME Wilma /Old/
1 SEX F
0 @F1@ FAM
1 HUSB @I2@
1 WIFE @I3@
1 CHIL @I1@
`

// cousinsGED: C1 and C2 are first cousins. Their parents P1 and P2 are
// siblings, children of the grandparents G1 and G2; S1 and S2 married
// into the family and share no ancestor with it.
//
//	G1 ═ G2
//	  │
//	┌─┴─────┐
//	P1 ═ S1  S2 ═ P2
//	  │        │
//	  C1       C2
const cousinsGED = `0 @G1@ INDI
1 NAME George /Stone/
1 SEX M
1 BIRT
2 DATE 2 Feb 1901
0 @G2@ INDI
1 NAME Greta /Hill/
1 SEX F
0 @P1@ INDI
1 NAME Peter /Stone/
1 SEX M
0 @P2@ INDI
1 NAME Paula /Stone/
1 SEX F
0 @S1@ INDI
1 NAME Susan /Marsh/
1 SEX F
0 @S2@ INDI
1 NAME Simon /Reed/
1 SEX M
0 @C1@ INDI
1 NAME Clara /Stone/
1 SEX F
0 @C2@ INDI
1 NAME Colin /Reed/
1 SEX M
0 @FG@ FAM
1 HUSB @G1@
1 WIFE @G2@
1 CHIL @P1@
1 CHIL @P2@
0 @F1@ FAM
1 HUSB @P1@
1 WIFE @S1@
1 CHIL @C1@
0 @F2@ FAM
1 HUSB @S2@
1 WIFE @P2@
1 CHIL @C2@
`

// diamondGED: pedigree collapse. D's parents A and B are siblings who
// share the single recorded parent X, so D reaches X along two
// distinct lines.
const diamondGED = `0 @X@ INDI
1 NAME Xavier /Root/
0 @A@ INDI
1 NAME Alan /Root/
0 @B@ INDI
1 NAME Beth /Root/
0 @D@ INDI
1 NAME Dora /Root/
0 @F1@ FAM
1 HUSB @X@
1 CHIL @A@
1 CHIL @B@
0 @F2@ FAM
1 HUSB @A@
1 WIFE @B@
1 CHIL @D@
`

// doubleGED: C1 and C2 are double cousins. Their fathers are
// siblings (children of GA) and their mothers are siblings (children
// of GB), giving two independent most recent common ancestors.
const doubleGED = `0 @GA@ INDI
1 NAME Gus /Adler/
0 @GB@ INDI
1 NAME Gwen /Baker/
0 @A1@ INDI
1 NAME Abel /Adler/
0 @A2@ INDI
1 NAME Amos /Adler/
0 @B1@ INDI
1 NAME Bella /Baker/
0 @B2@ INDI
1 NAME Betty /Baker/
0 @C1@ INDI
1 NAME Cora /Adler/
0 @C2@ INDI
1 NAME Cyril /Adler/
0 @FA@ FAM
1 HUSB @GA@
1 CHIL @A1@
1 CHIL @A2@
0 @FB@ FAM
1 WIFE @GB@
1 CHIL @B1@
1 CHIL @B2@
0 @F1@ FAM
1 HUSB @A1@
1 WIFE @B1@
1 CHIL @C1@
0 @F2@ FAM
1 HUSB @A2@
1 WIFE @B2@
1 CHIL @C2@
`

// loopGED is malformed input: I1 and I2 are each recorded as the
// other's parent.
const loopGED = `0 @I1@ INDI
1 NAME Melvin /Moebius/
0 @I2@ INDI
1 NAME Escher /Moebius/
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
0 @F2@ FAM
1 HUSB @I2@
1 CHIL @I1@
`

// wantIDs asserts that s contains exactly the given identifiers.
func wantIDs(t *testing.T, s Set, want ...string) {
	t.Helper()
	got := s.IDs()
	if len(got) != len(want) {
		t.Fatalf("set = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("set = %v, want %v", got, want)
		}
	}
}

// lineIDs flattens a line into its identifier sequence.
func lineIDs(l Line) []string {
	ids := make([]string, len(l))
	for i, p := range l {
		ids[i] = p.ID()
	}
	return ids
}
