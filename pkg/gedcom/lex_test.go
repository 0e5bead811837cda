package gedcom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sligocki/gedcom/pkg/errors"
)

const sampleGED = `0 HEAD
1 SOUR test
0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
1 BIRT
2 DATE 13 Dec 1985
2 PLAC Springfield
1 DEAT
2 DATE 2 Jan 2050
0 @I2@ INDI
1 NAME Jane /Roe/
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 1 Jun 1984
0 TRLR
`

func TestLex_TopLevelRecords(t *testing.T) {
	records, err := Lex(strings.NewReader(sampleGED))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("Lex() returned %d top-level records, want 5", len(records))
	}

	want := []struct {
		xref string
		tag  string
	}{
		{"", "HEAD"},
		{"@I1@", "INDI"},
		{"@I2@", "INDI"},
		{"@F1@", "FAM"},
		{"", "TRLR"},
	}
	for i, w := range want {
		if records[i].XRef != w.xref {
			t.Errorf("records[%d].XRef = %q, want %q", i, records[i].XRef, w.xref)
		}
		if records[i].Tag != w.tag {
			t.Errorf("records[%d].Tag = %q, want %q", i, records[i].Tag, w.tag)
		}
	}
}

func TestLex_Nesting(t *testing.T) {
	records, err := Lex(strings.NewReader(sampleGED))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}

	indi := records[1] // @I1@
	if len(indi.Subs) != 4 {
		t.Fatalf("INDI has %d sub-records, want 4", len(indi.Subs))
	}

	birt := indi.Subs[2]
	if birt.Tag != "BIRT" {
		t.Fatalf("Subs[2].Tag = %q, want BIRT", birt.Tag)
	}
	if len(birt.Subs) != 2 {
		t.Errorf("BIRT has %d sub-records, want 2", len(birt.Subs))
	}
	if birt.Subs[0].Tag != "DATE" || birt.Subs[0].Data != "13 Dec 1985" {
		t.Errorf("BIRT.Subs[0] = %s %q, want DATE \"13 Dec 1985\"", birt.Subs[0].Tag, birt.Subs[0].Data)
	}
}

func TestLex_SiblingSubtreeReset(t *testing.T) {
	// The second level-1 record must attach to the level-0 record, not to
	// the previous level-2 chain.
	input := "0 @I1@ INDI\n1 BIRT\n2 DATE 1900\n1 DEAT\n2 DATE 1960\n"
	records, err := Lex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}

	indi := records[0]
	if len(indi.Subs) != 2 {
		t.Fatalf("INDI has %d sub-records, want 2 (BIRT, DEAT)", len(indi.Subs))
	}
	if got, ok := indi.Field("DEAT", "DATE"); !ok || got != "1960" {
		t.Errorf("Field(DEAT, DATE) = %q, %v, want \"1960\", true", got, ok)
	}
}

func TestLex_BlankLinesSkipped(t *testing.T) {
	input := "0 @I1@ INDI\n\n   \n1 NAME John /Doe/\n"
	records, err := Lex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Lex() returned %d records, want 1", len(records))
	}
	if len(records[0].Subs) != 1 {
		t.Errorf("INDI has %d sub-records, want 1", len(records[0].Subs))
	}
}

func TestLex_EntityLineFields(t *testing.T) {
	records, err := Lex(strings.NewReader("0 @F31@ FAM some trailing data\n"))
	if err != nil {
		t.Fatalf("Lex() error: %v", err)
	}
	rec := records[0]
	if rec.XRef != "@F31@" {
		t.Errorf("XRef = %q, want @F31@", rec.XRef)
	}
	if rec.Tag != "FAM" {
		t.Errorf("Tag = %q, want FAM", rec.Tag)
	}
	if rec.Data != "some trailing data" {
		t.Errorf("Data = %q, want \"some trailing data\"", rec.Data)
	}
}

func TestLex_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"single token", "0\n", errors.ErrCodeInvalidLine},
		{"entity line without type", "0 @I1@\n", errors.ErrCodeInvalidLine},
		{"non-numeric level", "x NAME John\n", errors.ErrCodeInvalidLevel},
		{"negative level", "-1 NAME John\n", errors.ErrCodeInvalidLevel},
		{"level jump at start", "1 NAME John\n", errors.ErrCodeInvalidLevel},
		{"level jump mid-file", "0 @I1@ INDI\n2 DATE 1900\n", errors.ErrCodeInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Lex(%q) succeeded, want %s", tt.input, tt.wantCode)
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Lex(%q) error code = %s, want %s", tt.input, errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLex_ErrorCarriesLineNumber(t *testing.T) {
	input := "0 @I1@ INDI\n1 NAME John /Doe/\n3 DATE 1900\n"
	_, err := Lex(strings.NewReader(input))
	if err == nil {
		t.Fatal("Lex() succeeded, want level jump error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should mention line 3", err)
	}
}

func TestLexFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.ged")
	if err := os.WriteFile(path, []byte(sampleGED), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LexFile(path)
	if err != nil {
		t.Fatalf("LexFile() error: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("LexFile() returned %d records, want 5", len(records))
	}
}

func TestLexFile_Missing(t *testing.T) {
	_, err := LexFile(filepath.Join(t.TempDir(), "nope.ged"))
	if err == nil {
		t.Fatal("LexFile() succeeded on a missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
