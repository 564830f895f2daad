// Package store persists saved searches to a local YAML file.
// A saved search keeps the source and params, never the compiled string,
// so reloading and recompiling always reflects the current engine.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
)

// ErrNotFound is returned when no saved search has the requested ID.
var ErrNotFound = errors.New("saved search not found")

// SavedSearch is one stored (source, params, title) tuple.
type SavedSearch struct {
	ID        string       `yaml:"id" json:"id"`
	UserID    string       `yaml:"user_id,omitempty" json:"user_id,omitempty"`
	SourceKey sources.Key  `yaml:"source_key" json:"source_key"`
	Title     string       `yaml:"title" json:"title"`
	Params    query.Params `yaml:"params" json:"params"`
	CreatedAt time.Time    `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time    `yaml:"updated_at" json:"updated_at"`
}

type document struct {
	Searches []SavedSearch `yaml:"searches"`
}

// Store is a file-backed collection of saved searches. It is safe for
// concurrent use within one process.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// Open returns a store backed by path. The file is created on first save.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	s := &Store{path: path, now: time.Now}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save inserts a new search (empty ID) or updates an existing one and
// returns the stored value.
func (s *Store) Save(search SavedSearch) (SavedSearch, error) {
	search.Title = strings.TrimSpace(search.Title)
	if search.Title == "" {
		return SavedSearch{}, errors.New("title is required")
	}
	if search.SourceKey == "" {
		return SavedSearch{}, errors.New("source key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return SavedSearch{}, err
	}

	now := s.now().UTC().Truncate(time.Second)
	search.UpdatedAt = now

	if search.ID == "" {
		search.ID = uuid.NewString()
		search.CreatedAt = now
		doc.Searches = append(doc.Searches, search)
	} else {
		i := indexOf(doc.Searches, search.ID)
		if i < 0 {
			return SavedSearch{}, fmt.Errorf("%w: %s", ErrNotFound, search.ID)
		}
		search.CreatedAt = doc.Searches[i].CreatedAt
		doc.Searches[i] = search
	}

	if err := s.write(doc); err != nil {
		return SavedSearch{}, err
	}
	return search, nil
}

// Get returns the search with the given ID. A unique ID prefix is accepted.
func (s *Store) Get(id string) (SavedSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return SavedSearch{}, err
	}
	i, err := resolve(doc.Searches, id)
	if err != nil {
		return SavedSearch{}, err
	}
	return doc.Searches[i], nil
}

// List returns all searches ordered by title, then creation time.
func (s *Store) List() ([]SavedSearch, error) {
	s.mu.Lock()
	doc, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	col := collate.New(language.Und, collate.IgnoreCase)
	list := doc.Searches
	sort.SliceStable(list, func(i, j int) bool {
		if c := col.CompareString(list[i].Title, list[j].Title); c != 0 {
			return c < 0
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// Delete removes the search with the given ID (or unique prefix).
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	i, err := resolve(doc.Searches, id)
	if err != nil {
		return err
	}
	doc.Searches = append(doc.Searches[:i], doc.Searches[i+1:]...)
	return s.write(doc)
}

func (s *Store) load() (document, error) {
	var doc document
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read store: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *Store) write(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".searches-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

func indexOf(list []SavedSearch, id string) int {
	for i, s := range list {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func resolve(list []SavedSearch, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	if i := indexOf(list, id); i >= 0 {
		return i, nil
	}

	match := -1
	for i, s := range list {
		if strings.HasPrefix(s.ID, id) {
			if match >= 0 {
				return -1, fmt.Errorf("ambiguous id prefix %q", id)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return match, nil
}
