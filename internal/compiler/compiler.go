// Package compiler turns structured search intent into a Boolean query
// string and destination URL for one source and engine.
package compiler

import (
	"log"
	"strings"

	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
)

// Compiler assembles query fragments in a fixed order. It holds no mutable
// state and is safe for concurrent use.
type Compiler struct {
	registry *sources.Registry
	synonyms Synonyms
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithSynonyms expands include keywords into OR-groups of their synonyms.
func WithSynonyms(s Synonyms) Option {
	return func(c *Compiler) {
		c.synonyms = s.clone()
	}
}

// New creates a Compiler over the given registry.
func New(registry *sources.Registry, opts ...Option) *Compiler {
	c := &Compiler{registry: registry}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the compiler was built with.
func (c *Compiler) Registry() *sources.Registry {
	return c.registry
}

// Compile builds the query for key. Fragments are emitted in this order and
// joined by single spaces, skipping empty ones:
//
//  1. site restriction (always present)
//  2. role
//  3. include keywords as an AND-group
//  4. location
//  5. source qualifiers (only for sources that define them)
//  6. exclude keywords, each negated
//
// The only error is *sources.UnknownSourceError.
func (c *Compiler) Compile(key sources.Key, p query.Params, engine query.Engine) (query.BooleanQuery, error) {
	src, err := c.registry.Lookup(key)
	if err != nil {
		return query.BooleanQuery{}, err
	}

	fragments := []string{src.SiteRestriction()}
	fragments = append(fragments, query.Sanitize(p.Role))
	fragments = append(fragments, c.includeGroup(p.Include))
	fragments = append(fragments, query.Sanitize(p.Location))
	if src.Qualifiers != nil {
		fragments = append(fragments, src.Qualifiers(p)...)
	}
	fragments = append(fragments, query.NotGroup(p.Exclude))

	return query.NewBooleanQuery(joinFragments(fragments), engine), nil
}

// CompileOrEmpty is Compile for display callers: an unknown source is logged
// and yields the empty query so a "no query yet" state can be rendered.
func (c *Compiler) CompileOrEmpty(key sources.Key, p query.Params, engine query.Engine) query.BooleanQuery {
	q, err := c.Compile(key, p, engine)
	if err != nil {
		log.Printf("Warning: %v", err)
		return query.BooleanQuery{}
	}
	return q
}

func (c *Compiler) includeGroup(tokens []string) string {
	if len(c.synonyms) == 0 {
		return query.AndGroup(tokens)
	}

	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		terms = append(terms, c.synonyms.expand(token))
	}
	return query.Join(terms, "AND")
}

func joinFragments(fragments []string) string {
	kept := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
