// Package export renders saved searches for sharing outside the tool:
// a browser bookmark file, a Markdown list, and a zip bundle of both plus
// the raw YAML.
package export

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/f4ah6o/hirelab-go/internal/compiler"
	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/store"
)

// Entry is one exported search with its compiled query.
type Entry struct {
	Search store.SavedSearch
	Source string // display label
	Query  query.BooleanQuery
}

// Entries compiles every saved search for engine. Searches whose source is
// no longer registered are skipped with a warning.
func Entries(c *compiler.Compiler, list []store.SavedSearch, engine query.Engine) []Entry {
	entries := make([]Entry, 0, len(list))
	for _, s := range list {
		src, err := c.Registry().Lookup(s.SourceKey)
		if err != nil {
			log.Printf("Warning: skipping %q: %v", s.Title, err)
			continue
		}
		q, err := c.Compile(s.SourceKey, s.Params, engine)
		if err != nil {
			log.Printf("Warning: skipping %q: %v", s.Title, err)
			continue
		}
		entries = append(entries, Entry{Search: s, Source: src.Label, Query: q})
	}
	return entries
}

// Bookmarks writes entries as a Netscape bookmark file, the format every
// major browser imports.
func Bookmarks(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n"); err != nil {
		return err
	}

	meta := element(atom.Meta,
		html.Attribute{Key: "http-equiv", Val: "Content-Type"},
		html.Attribute{Key: "content", Val: "text/html; charset=UTF-8"})
	title := element(atom.Title)
	title.AppendChild(text("Saved searches"))
	heading := element(atom.H1)
	heading.AppendChild(text("Saved searches"))

	list := element(atom.Dl)
	for _, e := range entries {
		dt := element(atom.Dt)
		a := element(atom.A,
			html.Attribute{Key: "href", Val: e.Query.URL},
			html.Attribute{Key: "add_date", Val: unixSeconds(e.Search.CreatedAt)},
			html.Attribute{Key: "last_modified", Val: unixSeconds(e.Search.UpdatedAt)})
		a.AppendChild(text(e.Search.Title))
		dt.AppendChild(a)
		dd := element(atom.Dd)
		dd.AppendChild(text(e.Source + ": " + e.Query.Raw))
		list.AppendChild(dt)
		list.AppendChild(dd)
	}

	for _, n := range []*html.Node{meta, title, heading, list} {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render bookmarks: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders entries as a Markdown list of links with the raw query
// shown as inline code.
func Markdown(entries []Entry) (string, error) {
	doc := element(atom.Div)
	heading := element(atom.H2)
	heading.AppendChild(text("Saved searches"))
	doc.AppendChild(heading)

	list := element(atom.Ul)
	for _, e := range entries {
		li := element(atom.Li)
		a := element(atom.A, html.Attribute{Key: "href", Val: e.Query.URL})
		a.AppendChild(text(e.Search.Title))
		li.AppendChild(a)
		li.AppendChild(text(" (" + e.Source + ") "))
		code := element(atom.Code)
		code.AppendChild(text(e.Query.Raw))
		li.AppendChild(code)
		list.AppendChild(li)
	}
	doc.AppendChild(list)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}
	return strings.TrimSpace(markdown) + "\n", nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func unixSeconds(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.Unix(), 10)
}
