package compiler

import (
	"strings"

	"github.com/f4ah6o/hirelab-go/internal/query"
)

// Synonyms maps an include keyword to alternative spellings. Lookup is
// case-insensitive on the trimmed keyword.
type Synonyms map[string][]string

func (s Synonyms) clone() Synonyms {
	if len(s) == 0 {
		return nil
	}
	out := make(Synonyms, len(s))
	for token, expansions := range s {
		key := normalizeKey(token)
		if key == "" {
			continue
		}
		out[key] = append(out[key], expansions...)
	}
	return out
}

// Expansions returns the configured alternatives for token.
func (s Synonyms) Expansions(token string) []string {
	return s[normalizeKey(token)]
}

// expand returns the sanitized token, or an OR-group of the token and its
// expansions when any are configured.
func (s Synonyms) expand(token string) string {
	expansions := s.Expansions(token)
	if len(expansions) == 0 {
		return query.Sanitize(token)
	}
	if query.Sanitize(token) == "" {
		return ""
	}
	return query.OrGroup(append([]string{token}, expansions...))
}

func normalizeKey(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
