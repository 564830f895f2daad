// Package config loads the optional hirelab configuration file.
//
// The file lives at $HIRELAB_HOME/config.toml, falling back to
// ~/.hirelab/config.toml. A missing file is not an error.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/f4ah6o/hirelab-go/internal/compiler"
	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
)

// Defaults.
const (
	DefaultListen    = ":8080"
	DefaultStoreFile = "searches.yaml"
)

// Config represents the structure of config.toml:
//
//	default_engine = "bing"
//	store_path = "/data/searches.yaml"
//	listen = ":9000"
//
//	[synonyms]
//	js = ["JavaScript", "ECMAScript"]
//
//	[[sources]]
//	key = "gitlab"
//	site = "gitlab.com"
type Config struct {
	DefaultEngine string               `toml:"default_engine"`
	StorePath     string               `toml:"store_path"`
	Listen        string               `toml:"listen"`
	Synonyms      map[string][]string  `toml:"synonyms"`
	Sources       []sources.FileSource `toml:"sources"`

	// path is where the config was read from, empty when defaults are used.
	path string
}

// Home returns the hirelab home directory. It checks the HIRELAB_HOME
// environment variable first, then falls back to ~/.hirelab.
func Home() (string, error) {
	if home := os.Getenv("HIRELAB_HOME"); home != "" {
		return home, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	return filepath.Join(usr.HomeDir, ".hirelab"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.toml"), nil
}

// Load reads the config at path. An empty path means DefaultPath. A missing
// file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, cfg.applyDefaults()
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.path = path
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	engine, err := query.ParseEngine(c.DefaultEngine)
	if err != nil {
		return err
	}
	c.DefaultEngine = string(engine)

	if c.Listen == "" {
		c.Listen = DefaultListen
	}

	if c.StorePath == "" {
		home, err := Home()
		if err != nil {
			return err
		}
		c.StorePath = filepath.Join(home, DefaultStoreFile)
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Engine returns the configured default engine.
func (c *Config) Engine() query.Engine {
	return query.Engine(c.DefaultEngine)
}

// Registry returns the built-in registry merged with configured sources.
func (c *Config) Registry() (*sources.Registry, error) {
	reg := sources.Default()
	if len(c.Sources) == 0 {
		return reg, nil
	}
	extra, err := sources.FromFile(c.Sources)
	if err != nil {
		return nil, err
	}
	return reg.Merge(extra...)
}

// Compiler builds a compiler from the configured registry and synonyms.
func (c *Config) Compiler() (*compiler.Compiler, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	var opts []compiler.Option
	if len(c.Synonyms) > 0 {
		opts = append(opts, compiler.WithSynonyms(compiler.Synonyms(c.Synonyms)))
	}
	return compiler.New(reg, opts...), nil
}
