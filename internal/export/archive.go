package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Archive file names.
const (
	ArchiveSearches  = "searches.yaml"
	ArchiveBookmarks = "bookmarks.html"
	ArchiveMarkdown  = "searches.md"
)

// Archive writes a zip bundle to path containing the saved searches as YAML,
// the bookmark file and the Markdown list. It returns the path written.
func Archive(path string, entries []Entry) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".zip"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	files, err := archiveFiles(entries)
	if err != nil {
		return "", err
	}

	log.Printf("Packaging %d search(es) to %s...", len(entries), path)

	zipFile, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	modified := time.Now()
	for _, name := range []string{ArchiveSearches, ArchiveBookmarks, ArchiveMarkdown} {
		header := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified}
		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return "", fmt.Errorf("failed to add %s: %w", name, err)
		}
		if _, err := writer.Write(files[name]); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize zip: %w", err)
	}

	log.Printf("Successfully created: %s", path)
	return path, nil
}

func archiveFiles(entries []Entry) (map[string][]byte, error) {
	type record struct {
		ID     string `yaml:"id"`
		Title  string `yaml:"title"`
		Source string `yaml:"source"`
		Params any    `yaml:"params"`
		Raw    string `yaml:"raw"`
		URL    string `yaml:"url"`
	}
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, record{
			ID:     e.Search.ID,
			Title:  e.Search.Title,
			Source: string(e.Search.SourceKey),
			Params: e.Search.Params,
			Raw:    e.Query.Raw,
			URL:    e.Query.URL,
		})
	}
	searches, err := yaml.Marshal(map[string]any{"searches": records})
	if err != nil {
		return nil, fmt.Errorf("failed to encode searches: %w", err)
	}

	var bookmarks bytes.Buffer
	if err := Bookmarks(&bookmarks, entries); err != nil {
		return nil, err
	}

	markdown, err := Markdown(entries)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		ArchiveSearches:  searches,
		ArchiveBookmarks: bookmarks.Bytes(),
		ArchiveMarkdown:  []byte(markdown),
	}, nil
}
