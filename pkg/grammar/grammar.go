// Package grammar checks generated TextMate grammars and keeps them by scope.
package grammar

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Store manages the grammars generated in one run.
type Store struct {
	grammars map[string]*Grammar
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		grammars: make(map[string]*Grammar),
	}
}

// Load decodes and validates a grammar, then stores it under its scope name.
func (s *Store) Load(ctx context.Context, data []byte) (*Grammar, error) {
	g, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Errorf("unmarshaling grammar: %w", err)
	}

	if err := Validate(g); err != nil {
		return nil, err
	}

	if _, dup := s.grammars[g.ScopeName]; dup {
		return nil, errors.Errorf("grammar %s loaded twice", g.ScopeName)
	}

	zerolog.Ctx(ctx).Debug().Str("scope", g.ScopeName).Int("patterns", len(g.Patterns)).Msg("loaded grammar")

	s.grammars[g.ScopeName] = g
	return g, nil
}

// GetGrammar retrieves a grammar by scope name.
func (s *Store) GetGrammar(scope string) (*Grammar, error) {
	g, ok := s.grammars[scope]
	if !ok {
		return nil, errors.Errorf("grammar not found: %s", scope)
	}
	return g, nil
}

// Scopes returns the scope names of all stored grammars, sorted.
func (s *Store) Scopes() []string {
	scopes := make([]string, 0, len(s.grammars))
	for scope := range s.grammars {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	return scopes
}

// Validate checks the structural rules editors rely on: a scope name, at
// least one rule, and begin rules that can terminate.
func Validate(g *Grammar) error {
	if g.ScopeName == "" {
		return errors.New("grammar has no scopeName")
	}
	if len(g.Patterns) == 0 && len(g.Repository) == 0 {
		return errors.Errorf("grammar %s has no patterns", g.ScopeName)
	}

	for i, p := range g.Patterns {
		if err := validatePattern(p); err != nil {
			return errors.Errorf("grammar %s: patterns[%d]: %w", g.ScopeName, i, err)
		}
	}

	names := make([]string, 0, len(g.Repository))
	for name := range g.Repository {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := validatePattern(g.Repository[name]); err != nil {
			return errors.Errorf("grammar %s: repository.%s: %w", g.ScopeName, name, err)
		}
	}

	return nil
}

func validatePattern(p Pattern) error {
	switch {
	case p.Begin != "":
		if p.End == "" && p.While == "" {
			return errors.New("begin rule without end or while")
		}
		if p.End != "" && p.While != "" {
			return errors.New("begin rule with both end and while")
		}
	case p.Match != "", p.Include != "", len(p.Patterns) > 0:
	default:
		return errors.New("rule has no match, begin, include or patterns")
	}

	for i, child := range p.Patterns {
		if err := validatePattern(child); err != nil {
			return errors.Errorf("patterns[%d]: %w", i, err)
		}
	}
	return nil
}
