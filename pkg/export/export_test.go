package export

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/gedcom"
	"github.com/sligocki/gedcom/pkg/pedigree"
)

const familyGED = `0 @G1@ INDI
1 NAME George /Stone/
1 BIRT
2 DATE 2 Feb 1901
1 DEAT
2 DATE 30 Jan 1980
0 @P1@ INDI
1 NAME Peter /Stone/
0 @S1@ INDI
1 NAME Susan /Marsh/
0 @C1@ INDI
1 NAME Clara /Stone/
0 @F1@ FAM
1 HUSB @G1@
1 CHIL @P1@
0 @F2@ FAM
1 HUSB @P1@
1 WIFE @S1@
1 CHIL @C1@
`

// buildPeople parses the fixture and resolves the requested people.
func buildPeople(t *testing.T, input string, ids ...string) []*pedigree.Person {
	t.Helper()
	records, err := gedcom.Lex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}
	graph, err := pedigree.Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	people := make([]*pedigree.Person, len(ids))
	for i, id := range ids {
		p, ok := graph.Person(id)
		if !ok {
			t.Fatalf("person %s not in graph", id)
		}
		people[i] = p
	}
	return people
}

func TestFromPeople(t *testing.T) {
	// S1 is excluded, so the C1 to S1 link must not appear.
	people := buildPeople(t, familyGED, "@C1@", "@P1@", "@G1@")

	got := FromPeople(people, Options{})
	want := Graph{
		Nodes: []Node{
			{ID: "@C1@", Label: "Clara Stone"},
			{ID: "@G1@", Label: "George Stone"},
			{ID: "@P1@", Label: "Peter Stone"},
		},
		Edges: []Edge{
			{From: "@P1@", To: "@C1@"},
			{From: "@G1@", To: "@P1@"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromPeople() = %+v, want %+v", got, want)
	}
}

func TestFromPeople_Detailed(t *testing.T) {
	people := buildPeople(t, familyGED, "@G1@", "@P1@")

	got := FromPeople(people, Options{Detailed: true})
	if got.Nodes[0].Label != "George Stone (1901 - 1980)" {
		t.Errorf("detailed label = %q, want years included", got.Nodes[0].Label)
	}
	if got.Nodes[1].Label != "Peter Stone (? - ?)" {
		t.Errorf("detailed label = %q, want unknown years marked", got.Nodes[1].Label)
	}
}

func TestFromPeople_OrderIndependent(t *testing.T) {
	fwd := buildPeople(t, familyGED, "@C1@", "@P1@", "@G1@")
	rev := buildPeople(t, familyGED, "@G1@", "@P1@", "@C1@")

	if !reflect.DeepEqual(FromPeople(fwd, Options{}), FromPeople(rev, Options{})) {
		t.Error("graphs from the same subset differ with input order")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	people := buildPeople(t, familyGED, "@C1@", "@P1@", "@S1@")
	g := FromPeople(people, Options{})

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if !reflect.DeepEqual(back, g) {
		t.Errorf("round trip = %+v, want %+v", back, g)
	}
}

func TestReadJSON_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "malformed",
			input: `{"nodes": [`,
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name:  "missing id",
			input: `{"nodes": [{"label": "x"}], "edges": []}`,
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name:  "duplicate id",
			input: `{"nodes": [{"id": "@A@"}, {"id": "@A@"}], "edges": []}`,
			code:  errors.ErrCodeDuplicateID,
		},
		{
			name:  "unknown from",
			input: `{"nodes": [{"id": "@A@"}], "edges": [{"from": "@B@", "to": "@A@"}]}`,
			code:  errors.ErrCodeUnknownID,
		},
		{
			name:  "unknown to",
			input: `{"nodes": [{"id": "@A@"}], "edges": [{"from": "@A@", "to": "@B@"}]}`,
			code:  errors.ErrCodeUnknownID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestExportImportJSON(t *testing.T) {
	people := buildPeople(t, familyGED, "@C1@", "@P1@")
	g := FromPeople(people, Options{})

	path := t.TempDir() + "/graph.json"
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if !reflect.DeepEqual(back, g) {
		t.Errorf("file round trip = %+v, want %+v", back, g)
	}
}

func TestImportJSON_Missing(t *testing.T) {
	_, err := ImportJSON(t.TempDir() + "/absent.json")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
