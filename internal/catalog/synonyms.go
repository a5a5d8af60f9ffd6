package catalog

import (
	"fmt"
	"strings"
)

// Synonyms maps canonical terms to their alias sets, e.g. "javascript" to
// {"js", "ecmascript", "node"}. Immutable after construction.
type Synonyms struct {
	keys   []string
	groups map[string][]string
}

// NewSynonyms validates the table and returns an immutable synonym table.
// Keys preserve the given order so closures stay deterministic.
func NewSynonyms(groups []SynonymGroup) (*Synonyms, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("synonyms: no groups")
	}

	keys := make([]string, 0, len(groups))
	byKey := make(map[string][]string, len(groups))
	for _, g := range groups {
		key := strings.TrimSpace(g.Key)
		if key == "" {
			return nil, fmt.Errorf("synonyms: empty group key")
		}
		if key != strings.ToLower(key) {
			return nil, fmt.Errorf("synonyms: key %q is not lower-case", key)
		}
		if _, dup := byKey[key]; dup {
			return nil, fmt.Errorf("synonyms: duplicate key %q", key)
		}
		if len(g.Aliases) == 0 {
			return nil, fmt.Errorf("synonyms: key %q has no aliases", key)
		}
		aliases := make([]string, 0, len(g.Aliases))
		for _, a := range g.Aliases {
			a = strings.TrimSpace(a)
			if a == "" {
				return nil, fmt.Errorf("synonyms: key %q has an empty alias", key)
			}
			aliases = append(aliases, strings.ToLower(a))
		}
		keys = append(keys, key)
		byKey[key] = aliases
	}

	return &Synonyms{keys: keys, groups: byKey}, nil
}

// SynonymGroup is one canonical term plus its aliases.
type SynonymGroup struct {
	Key     string
	Aliases []string
}

// DefaultSynonyms returns the built-in synonym table.
func DefaultSynonyms() (*Synonyms, error) {
	return NewSynonyms([]SynonymGroup{
		{Key: "javascript", Aliases: []string{"js", "ecmascript", "node"}},
		{Key: "python", Aliases: []string{"py", "python3"}},
		{Key: "machine learning", Aliases: []string{"ml", "artificial intelligence", "ai"}},
		{Key: "database", Aliases: []string{"db", "data storage", "sql"}},
		{Key: "frontend", Aliases: []string{"front-end", "client-side", "ui"}},
		{Key: "backend", Aliases: []string{"back-end", "server-side", "api"}},
		{Key: "experience", Aliases: []string{"years", "background", "expertise"}},
		{Key: "development", Aliases: []string{"dev", "programming", "coding"}},
		{Key: "management", Aliases: []string{"mgmt", "leadership", "supervision"}},
	})
}

// Keys returns the canonical terms in table order.
func (s *Synonyms) Keys() []string {
	if s == nil {
		return nil
	}
	return s.keys
}

// Aliases returns the alias list for a canonical term, nil if unknown.
func (s *Synonyms) Aliases(key string) []string {
	if s == nil {
		return nil
	}
	return s.groups[key]
}

// InGroup reports whether word is the canonical term itself or one of its
// aliases.
func (s *Synonyms) InGroup(key, word string) bool {
	if s == nil {
		return false
	}
	if word == key {
		return true
	}
	for _, a := range s.groups[key] {
		if a == word {
			return true
		}
	}
	return false
}

// Expand applies the synonym closure to a token list: for every token that
// is a canonical term or a member alias, the term and all its aliases are
// added. The result is deduplicated, preserving first-seen order.
func (s *Synonyms) Expand(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	for _, t := range tokens {
		add(t)
	}
	if s == nil {
		return out
	}
	for _, t := range tokens {
		for _, key := range s.keys {
			if s.InGroup(key, t) {
				add(key)
				for _, a := range s.groups[key] {
					add(a)
				}
			}
		}
	}
	return out
}
