package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
	"github.com/sligocki/gedcom/pkg/pipeline"
)

// testGED is two married Stone children of George and Greta, with the
// home marker on Peter and a DNA match on his first cousin Colin.
const testGED = `0 @G1@ INDI
1 NAME George /Stone/
0 @G2@ INDI
1 NAME Greta /Hill/
0 @P1@ INDI
1 NAME 🏠Peter /Stone/
0 @P2@ INDI
1 NAME Paula /Stone/
0 @S1@ INDI
1 NAME Susan /Marsh/
0 @S2@ INDI
1 NAME Simon /Reed/
0 @C1@ INDI
1 NAME Clara /Stone/
0 @C2@ INDI
1 NAME 🔬Colin /Reed/
0 @F1@ FAM
1 HUSB @G1@
1 WIFE @G2@
1 CHIL @P1@
1 CHIL @P2@
0 @F2@ FAM
1 HUSB @P1@
1 WIFE @S1@
1 CHIL @C1@
0 @F3@ FAM
1 HUSB @S2@
1 WIFE @P2@
1 CHIL @C2@
`

// parseTestFile writes testGED to a temp file and runs the pipeline
// over it with the default markers.
func parseTestFile(t *testing.T) *pipeline.Result {
	t.Helper()

	path := filepath.Join(t.TempDir(), "family.ged")
	if err := os.WriteFile(path, []byte(testGED), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := pipeline.NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
	result, err := runner.Run(context.Background(), pipeline.Options{
		Path:        path,
		HomeMarker:  pedigree.HomeMarker,
		MatchMarker: pedigree.MatchMarker,
	})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return result
}

func TestResolvePersonHome(t *testing.T) {
	result := parseTestFile(t)

	p, err := resolvePerson(context.Background(), result, "")
	if err != nil {
		t.Fatalf("resolvePerson() error: %v", err)
	}
	if p.ID() != "@P1@" {
		t.Errorf("resolvePerson(\"\") = %s, want the home person @P1@", p.ID())
	}
}

func TestResolvePersonNoHome(t *testing.T) {
	result := parseTestFile(t)
	result.Home = nil

	_, err := resolvePerson(context.Background(), result, "")
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodePersonNotFound)
	}
}

func TestResolvePersonExact(t *testing.T) {
	result := parseTestFile(t)

	p, err := resolvePerson(context.Background(), result, "Susan Marsh")
	if err != nil {
		t.Fatalf("resolvePerson() error: %v", err)
	}
	if p.ID() != "@S1@" {
		t.Errorf("resolvePerson(\"Susan Marsh\") = %s, want @S1@", p.ID())
	}
}

func TestResolvePersonPrefix(t *testing.T) {
	result := parseTestFile(t)

	p, err := resolvePerson(context.Background(), result, "Geor")
	if err != nil {
		t.Fatalf("resolvePerson() error: %v", err)
	}
	if p.ID() != "@G1@" {
		t.Errorf("resolvePerson(\"Geor\") = %s, want @G1@", p.ID())
	}
}

func TestResolvePersonNotFound(t *testing.T) {
	result := parseTestFile(t)

	_, err := resolvePerson(context.Background(), result, "Quentin Quill")
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodePersonNotFound)
	}
}

func TestAmbiguousNameError(t *testing.T) {
	result := parseTestFile(t)

	candidates := result.Graph.FindByPrefix("S")
	if len(candidates) != 2 {
		t.Fatalf("FindByPrefix(\"S\") returned %d people, want 2", len(candidates))
	}

	err := ambiguousNameError("S", candidates)
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodePersonNotFound)
	}
	for _, want := range []string{"Susan Marsh", "Simon Reed", "@S1@", "@S2@"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}
