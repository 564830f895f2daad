// Package preview renders compiled queries for the terminal or as JSON.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
	"github.com/f4ah6o/hirelab-go/internal/store"
)

var (
	// ANSI colors for terminal output
	colorHeader  = color.New(color.FgHiMagenta, color.Bold)
	colorBold    = color.New(color.Bold)
	colorCyan    = color.New(color.FgCyan)
	colorWarning = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed)
)

// Result is one compiled query with its advisory messages.
type Result struct {
	Source   sources.Key
	Engine   query.Engine
	Query    query.BooleanQuery
	Errors   []string
	Warnings []string
}

// MarshalJSON flattens the query fields into the result object.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source   sources.Key  `json:"source"`
		Engine   query.Engine `json:"engine"`
		Raw      string       `json:"raw"`
		Encoded  string       `json:"encoded"`
		URL      string       `json:"url"`
		Errors   []string     `json:"errors,omitempty"`
		Warnings []string     `json:"warnings,omitempty"`
	}{r.Source, r.Engine, r.Query.Raw, r.Query.Encoded, r.Query.URL, r.Errors, r.Warnings})
}

// Print writes a human-readable view of r.
func Print(w io.Writer, r Result) {
	colorHeader.Fprintf(w, "\nBoolean query for %s (%s)\n", r.Source, r.Engine)
	colorCyan.Fprintln(w, strings.Repeat("-", 40))
	colorBold.Fprintln(w, r.Query.Raw)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Encoded: %s\n", r.Query.Encoded)
	fmt.Fprintf(w, "URL:     %s\n", r.Query.URL)

	for _, e := range r.Errors {
		colorError.Fprintf(w, "Error: %s\n", e)
	}
	for _, warn := range r.Warnings {
		colorWarning.Fprintf(w, "Warning: %s\n", warn)
	}
	fmt.Fprintln(w)
}

// Sources prints the registry for selection.
func Sources(w io.Writer, list []sources.Source) {
	colorHeader.Fprintf(w, "\nSources (%d)\n", len(list))
	for _, s := range list {
		engines := make([]string, len(s.Engines))
		for i, e := range s.Engines {
			engines[i] = string(e)
		}
		status := ""
		if !s.Enabled {
			status = " (disabled)"
		}
		colorBold.Fprintf(w, "  %-14s", s.Key)
		fmt.Fprintf(w, " %-14s site:%-24s engines: %s%s\n", s.Label, s.Site, strings.Join(engines, ", "), status)
	}
	fmt.Fprintln(w)
}

// SavedSearches prints a listing of saved searches.
func SavedSearches(w io.Writer, list []store.SavedSearch) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No saved searches.")
		return
	}

	colorHeader.Fprintf(w, "\nSaved searches (%d)\n", len(list))
	for i, s := range list {
		colorBold.Fprintf(w, "%d. %s\n", i+1, s.Title)
		fmt.Fprintf(w, "   ID: %s | Source: %s\n", s.ID, s.SourceKey)
		fmt.Fprintf(w, "   Updated: %s\n", s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
