package gedcom

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sligocki/gedcom/pkg/errors"
)

// Lex parses a GEDCOM stream into the ordered list of top-level records,
// each with a fully populated sub-record tree.
//
// Hierarchy is reconstructed in a single pass using a chain of the most
// recently seen record per depth, seeded with a synthetic root one level
// above the top. Each line attaches to chain[level]; the chain is then
// truncated to level+1 entries and the new record appended, discarding
// any deeper entries left over from a previous sibling subtree.
//
// Blank lines are skipped. Any malformed line aborts the lex with an
// error carrying the 1-based line number: no partial tree is trusted
// downstream.
func Lex(r io.Reader) ([]*Record, error) {
	root := &Record{}
	chain := []*Record{root}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		rec, level, err := parseLine(fields, lineno)
		if err != nil {
			return nil, err
		}
		if level >= len(chain) {
			return nil, errors.New(errors.ErrCodeInvalidLevel,
				"line %d: level %d jumps more than one past depth %d", lineno, level, len(chain)-2)
		}

		parent := chain[level]
		parent.Subs = append(parent.Subs, rec)
		chain = append(chain[:level+1], rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read line %d", lineno+1)
	}

	return root.Subs, nil
}

// LexFile opens and lexes the GEDCOM file at path.
func LexFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Lex(f)
}

// parseLine tokenizes one non-blank line into a Record and its level.
// Two forms exist:
//
//	0 @I6@ INDI ...      entity line: level, xref, tag, data
//	2 DATE 13 Dec 1985   plain line:  level, tag, data
//
// The entity form is recognized by an "@"-prefixed second token.
func parseLine(fields []string, lineno int) (*Record, int, error) {
	if len(fields) < 2 {
		return nil, 0, errors.New(errors.ErrCodeInvalidLine,
			"line %d: expected at least a level and a tag, got %q", lineno, strings.Join(fields, " "))
	}

	level, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, 0, errors.New(errors.ErrCodeInvalidLevel,
			"line %d: level %q is not a number", lineno, fields[0])
	}
	if level < 0 {
		return nil, 0, errors.New(errors.ErrCodeInvalidLevel,
			"line %d: negative level %d", lineno, level)
	}

	rec := &Record{}
	if strings.HasPrefix(fields[1], "@") {
		if len(fields) < 3 {
			return nil, 0, errors.New(errors.ErrCodeInvalidLine,
				"line %d: entity line %q is missing a record type", lineno, strings.Join(fields, " "))
		}
		rec.XRef = fields[1]
		rec.Tag = fields[2]
		rec.Data = strings.Join(fields[3:], " ")
	} else {
		rec.Tag = fields[1]
		rec.Data = strings.Join(fields[2:], " ")
	}
	return rec, level, nil
}
