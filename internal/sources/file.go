package sources

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/f4ah6o/hirelab-go/internal/query"
)

// FileSource is the TOML form of a source definition:
//
//	[[sources]]
//	key = "gitlab"
//	label = "GitLab"
//	site = "gitlab.com"
//	engines = ["google", "bing"]
//	qualifiers = "none"
type FileSource struct {
	Key        string   `toml:"key"`
	Label      string   `toml:"label"`
	Site       string   `toml:"site"`
	Disabled   bool     `toml:"disabled"`
	Engines    []string `toml:"engines"`
	Qualifiers string   `toml:"qualifiers"`
}

type sourceFile struct {
	Sources []FileSource `toml:"sources"`
}

// LoadFile decodes source definitions from a TOML file.
func LoadFile(path string) ([]Source, error) {
	var f sourceFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return FromFile(f.Sources)
}

// FromFile converts decoded TOML definitions into sources.
func FromFile(defs []FileSource) ([]Source, error) {
	out := make([]Source, 0, len(defs))
	for _, d := range defs {
		provider, ok := qualifierProviders[d.Qualifiers]
		if !ok {
			return nil, fmt.Errorf("source %s: unknown qualifiers %q", d.Key, d.Qualifiers)
		}

		var engines []query.Engine
		for _, name := range d.Engines {
			e, err := query.ParseEngine(name)
			if err != nil {
				return nil, fmt.Errorf("source %s: %w", d.Key, err)
			}
			engines = append(engines, e)
		}

		label := d.Label
		if label == "" {
			label = d.Key
		}
		out = append(out, Source{
			Key:        Key(d.Key),
			Label:      label,
			Site:       d.Site,
			Enabled:    !d.Disabled,
			Engines:    engines,
			Qualifiers: provider,
		})
	}
	return out, nil
}
