package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sligocki/gedcom/pkg/errors"
	"github.com/sligocki/gedcom/pkg/pedigree"
	"github.com/sligocki/gedcom/pkg/pipeline"
)

// resolvePerson finds the person a command should operate on.
//
// With an empty name it falls back to the marked home person. A non-empty
// name is tried as an exact display-name match first, then as a name
// prefix; a prefix matching several people opens the interactive picker.
func resolvePerson(ctx context.Context, result *pipeline.Result, name string) (*pedigree.Person, error) {
	if name == "" {
		if result.Home == nil {
			cfg := configFromContext(ctx)
			return nil, errors.New(errors.ErrCodePersonNotFound,
				"no name given and no home person found; pass a name or mark one with the %q prefix", cfg.Markers.Home)
		}
		return result.Home, nil
	}

	p, err := result.Graph.FindByName(name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		return nil, err
	}

	switch matches := result.Graph.FindByPrefix(name); len(matches) {
	case 0:
		return nil, err
	case 1:
		return matches[0], nil
	default:
		return pickPerson(name, matches)
	}
}

// pickPerson opens the interactive list to disambiguate name between the
// candidate people. When the terminal is unavailable it returns an error
// listing the candidates instead, so piped invocations fail with a usable
// message.
func pickPerson(name string, candidates []*pedigree.Person) (*pedigree.Person, error) {
	final, err := tea.NewProgram(NewPersonListModel(name, candidates)).Run()
	if err != nil {
		return nil, ambiguousNameError(name, candidates)
	}

	m, ok := final.(PersonListModel)
	if !ok || m.Selected == nil {
		return nil, errors.New(errors.ErrCodePersonNotFound, "no person selected for %q", name)
	}
	return m.Selected, nil
}

// ambiguousNameError reports every candidate so the caller can retry with
// a full name.
func ambiguousNameError(name string, candidates []*pedigree.Person) error {
	descriptions := make([]string, len(candidates))
	for i, p := range candidates {
		descriptions[i] = fmt.Sprintf("%s [%s]", p, p.ID())
	}
	return errors.New(errors.ErrCodePersonNotFound,
		"%q matches %d people: %s", name, len(candidates), strings.Join(descriptions, "; "))
}
