// Package sources holds the registry of sites a Boolean query can be scoped to.
//
// A Registry is built once and never mutated. Each Source carries the
// qualifier provider that emits its source-specific fragments, so the
// compiler never branches on source keys.
package sources

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f4ah6o/hirelab-go/internal/query"
)

// Key identifies a source.
type Key string

const (
	LinkedIn      Key = "linkedin"
	GitHub        Key = "github"
	StackOverflow Key = "stackoverflow"
	Dribbble      Key = "dribbble"
	Xing          Key = "xing"
	Twitter       Key = "twitter"
)

// ErrUnknownSource is matched by every *UnknownSourceError.
var ErrUnknownSource = errors.New("unknown source")

// UnknownSourceError is returned when a key is not registered.
type UnknownSourceError struct {
	Key Key
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source: %s", e.Key)
}

func (e *UnknownSourceError) Unwrap() error { return ErrUnknownSource }

// QualifierProvider returns the source-specific fragments for params, in
// emission order. Fragments may be empty; the compiler drops them.
type QualifierProvider func(p query.Params) []string

// Source is one searchable site.
type Source struct {
	Key     Key
	Label   string
	Site    string // search-restriction scope, e.g. "linkedin.com/in"
	Enabled bool
	// Engines lists the destination engines offered for this source, preferred first.
	Engines []query.Engine
	// Qualifiers is nil for sources without source-specific fields.
	Qualifiers QualifierProvider
}

// SiteRestriction returns the "site:" fragment for the source.
func (s Source) SiteRestriction() string {
	return "site:" + s.Site
}

// SupportsQualifiers reports whether the source emits any qualifier fragments.
func (s Source) SupportsQualifiers() bool {
	return s.Qualifiers != nil
}

// Registry is an immutable set of sources keyed by Key.
type Registry struct {
	order []Key
	byKey map[Key]Source
}

// New builds a registry. Keys must be unique and every source needs a scope.
func New(list ...Source) (*Registry, error) {
	r := &Registry{byKey: make(map[Key]Source, len(list))}
	for _, s := range list {
		if s.Key == "" {
			return nil, errors.New("source key is required")
		}
		if strings.TrimSpace(s.Site) == "" {
			return nil, fmt.Errorf("source %s: site scope is required", s.Key)
		}
		if _, dup := r.byKey[s.Key]; dup {
			return nil, fmt.Errorf("duplicate source key: %s", s.Key)
		}
		if len(s.Engines) == 0 {
			s.Engines = []query.Engine{query.EngineGoogle, query.EngineBing}
		}
		s.Engines = append([]query.Engine(nil), s.Engines...)
		r.byKey[s.Key] = s
		r.order = append(r.order, s.Key)
	}
	return r, nil
}

// Lookup returns the source registered under key.
func (r *Registry) Lookup(key Key) (Source, error) {
	s, ok := r.byKey[key]
	if !ok {
		return Source{}, &UnknownSourceError{Key: key}
	}
	return s, nil
}

// List returns all sources in registration order.
func (r *Registry) List() []Source {
	out := make([]Source, 0, len(r.order))
	for _, k := range r.order {
		s := r.byKey[k]
		s.Engines = append([]query.Engine(nil), s.Engines...)
		out = append(out, s)
	}
	return out
}

// Enabled returns the enabled sources in registration order.
func (r *Registry) Enabled() []Source {
	var out []Source
	for _, s := range r.List() {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.order)
}

// Merge returns a new registry with extra sources appended. A source whose
// key already exists replaces the original in place.
func (r *Registry) Merge(extra ...Source) (*Registry, error) {
	replaced := make(map[Key]Source, len(extra))
	var appended []Source
	for _, s := range extra {
		if _, ok := r.byKey[s.Key]; ok {
			replaced[s.Key] = s
			continue
		}
		appended = append(appended, s)
	}

	list := make([]Source, 0, len(r.order)+len(appended))
	for _, k := range r.order {
		if s, ok := replaced[k]; ok {
			list = append(list, s)
			continue
		}
		list = append(list, r.byKey[k])
	}
	return New(append(list, appended...)...)
}
