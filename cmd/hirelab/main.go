// Package main is the entry point for the hirelab tool.
// hirelab compiles structured sourcing intent into Boolean search strings
// and search-engine URLs, keeps saved searches, and serves the engine over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/f4ah6o/hirelab-go/internal/api"
	"github.com/f4ah6o/hirelab-go/internal/compiler"
	"github.com/f4ah6o/hirelab-go/internal/config"
	"github.com/f4ah6o/hirelab-go/internal/export"
	"github.com/f4ah6o/hirelab-go/internal/preview"
	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
	"github.com/f4ah6o/hirelab-go/internal/store"
	"github.com/f4ah6o/hirelab-go/internal/validator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "build":
		runBuild(args)
	case "sources":
		runSources(args)
	case "validate":
		runValidate(args)
	case "save":
		runSave(args)
	case "list":
		runList(args)
	case "show":
		runShow(args)
	case "delete":
		runDelete(args)
	case "export":
		runExport(args)
	case "serve":
		runServe(args)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `hirelab - Boolean search strings for talent sourcing

hirelab turns a role, keywords, location and source-specific qualifiers into
a site-restricted Boolean query plus a ready-to-open search URL.

Usage:
  hirelab build [options]
  hirelab sources [options]
  hirelab validate [options]
  hirelab save --title <TITLE> [options]
  hirelab list [options]
  hirelab show <ID> [options]
  hirelab delete <ID> [options]
  hirelab export <OUTPUT> [options]
  hirelab serve [options]

Commands:
  build       Compile a Boolean query and search URL
  sources     List the sources a query can target
  validate    Check search parameters without compiling
  save        Save search parameters under a title
  list        List saved searches
  show        Recompile a saved search
  delete      Delete a saved search
  export      Export saved searches (.html, .md or .zip)
  serve       Serve the engine over HTTP/JSON
  help        Show this help message

Examples:
  hirelab build --source linkedin --role Engineer --include "React, TypeScript" --location Austin
  hirelab build --source github --include Go,gRPC --exclude tutorial --engine bing --json
  hirelab save --title "Go in Berlin" --source linkedin --role "Backend Engineer" --location Berlin
  hirelab export searches.zip

For more information on a command, use:
  hirelab <command> -h

Configuration is read from $HIRELAB_HOME/config.toml (default ~/.hirelab/config.toml).
`)
}

// paramFlags registers the search-parameter flags shared by build, validate and save.
type paramFlags struct {
	source     string
	engine     string
	role       string
	include    string
	exclude    string
	location   string
	employer   string
	education  string
	status     string
	paramsFile string
}

func (p *paramFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.source, "source", string(sources.LinkedIn), "Source to target (see 'hirelab sources')")
	fs.StringVar(&p.engine, "engine", "", "Search engine: google, bing or twitter (default from config)")
	fs.StringVar(&p.role, "role", "", "Role or job title")
	fs.StringVar(&p.include, "include", "", "Required keywords (comma-separated)")
	fs.StringVar(&p.exclude, "exclude", "", "Excluded keywords (comma-separated)")
	fs.StringVar(&p.location, "location", "", "Location")
	fs.StringVar(&p.employer, "employer", "", "Current employer (LinkedIn only)")
	fs.StringVar(&p.education, "education", "", "Education level: bachelors, masters or doctoral (LinkedIn only)")
	fs.StringVar(&p.status, "status", "", "Employment status: opentowork or hiring (LinkedIn only)")
	fs.StringVar(&p.paramsFile, "params", "", "Read search params as JSON from a file ('-' for stdin); flags override it")
}

// params builds query.Params from the JSON file (if any) and the flags.
func (p *paramFlags) params() (query.Params, error) {
	var out query.Params
	if p.paramsFile != "" {
		var data []byte
		var err error
		if p.paramsFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(p.paramsFile)
		}
		if err != nil {
			return out, fmt.Errorf("failed to read params: %w", err)
		}
		if out, err = query.ParseParams(data); err != nil {
			return out, err
		}
	}

	if p.role != "" {
		out.Role = p.role
	}
	if p.include != "" {
		out.Include = query.ParseArrayInput(p.include)
	}
	if p.exclude != "" {
		out.Exclude = query.ParseArrayInput(p.exclude)
	}
	if p.location != "" {
		out.Location = p.location
	}
	if p.employer != "" {
		out.Employer = p.employer
	}
	if p.education != "" {
		if err := out.Education.UnmarshalText([]byte(p.education)); err != nil {
			return out, err
		}
	}
	if p.status != "" {
		if err := out.OpenToWork.UnmarshalText([]byte(p.status)); err != nil {
			return out, err
		}
	}
	return out, nil
}

// env bundles what most subcommands need from the config file.
type env struct {
	cfg      *config.Config
	compiler *compiler.Compiler
}

func loadEnv(configPath string) env {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	c, err := cfg.Compiler()
	if err != nil {
		log.Fatalf("Failed to build source registry: %v", err)
	}
	return env{cfg: cfg, compiler: c}
}

func (e env) engine(name string) query.Engine {
	if name == "" {
		return e.cfg.Engine()
	}
	engine, err := query.ParseEngine(name)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return engine
}

func (e env) openStore() *store.Store {
	st, err := store.Open(e.cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open saved searches: %v", err)
	}
	return st
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)

	var (
		pf         paramFlags
		configPath string
		jsonOutput bool
	)
	pf.register(fs)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hirelab build [options]

Compile a Boolean query and search URL. Fragments are emitted in a fixed
order: site restriction, role, include keywords, location, source
qualifiers, excluded keywords.

Options:
`)
		fs.PrintDefaults()
	}

	fs.Parse(args)

	e := loadEnv(configPath)
	params, err := pf.params()
	if err != nil {
		log.Fatalf("Invalid search params: %v", err)
	}

	key := sources.Key(pf.source)
	engine := e.engine(pf.engine)
	q, err := e.compiler.Compile(key, params, engine)
	if err != nil {
		log.Fatalf("Failed to compile query: %v", err)
	}

	report := validator.New(e.compiler.Registry()).Check(key, params)
	printResult(preview.Result{Source: key, Engine: engine, Query: q, Errors: report.Errors, Warnings: report.Warnings}, jsonOutput)
}

func runSources(args []string) {
	fs := flag.NewFlagSet("sources", flag.ExitOnError)

	var (
		configPath string
		jsonOutput bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&jsonOutput, "json", false, "Output sources as JSON")
	fs.Parse(args)

	list := loadEnv(configPath).compiler.Registry().List()
	if !jsonOutput {
		preview.Sources(os.Stdout, list)
		return
	}

	type sourceJSON struct {
		Key     sources.Key    `json:"key"`
		Label   string         `json:"label"`
		Site    string         `json:"site"`
		Enabled bool           `json:"enabled"`
		Engines []query.Engine `json:"engines"`
	}
	out := make([]sourceJSON, 0, len(list))
	for _, s := range list {
		out = append(out, sourceJSON{Key: s.Key, Label: s.Label, Site: s.Site, Enabled: s.Enabled, Engines: s.Engines})
	}
	if err := preview.JSON(os.Stdout, out); err != nil {
		log.Fatalf("Failed to format JSON output: %v", err)
	}
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	var (
		pf         paramFlags
		configPath string
		jsonOutput bool
	)
	pf.register(fs)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	fs.Parse(args)

	e := loadEnv(configPath)
	params, err := pf.params()
	if err != nil {
		log.Fatalf("Invalid search params: %v", err)
	}

	report := validator.New(e.compiler.Registry()).Check(sources.Key(pf.source), params)
	if jsonOutput {
		if err := preview.JSON(os.Stdout, report); err != nil {
			log.Fatalf("Failed to format JSON output: %v", err)
		}
	} else {
		for _, msg := range report.Errors {
			fmt.Printf("Error: %s\n", msg)
		}
		for _, msg := range report.Warnings {
			fmt.Printf("Warning: %s\n", msg)
		}
		if report.OK() {
			fmt.Println("OK")
		}
	}

	if !report.OK() {
		os.Exit(1)
	}
}

func runSave(args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)

	var (
		pf         paramFlags
		configPath string
		title      string
		id         string
	)
	pf.register(fs)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.StringVar(&title, "title", "", "Name for this search (required)")
	fs.StringVar(&id, "id", "", "Update the saved search with this ID instead of creating one")
	fs.Parse(args)

	if title == "" {
		fmt.Fprintf(os.Stderr, "Error: --title is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	e := loadEnv(configPath)
	params, err := pf.params()
	if err != nil {
		log.Fatalf("Invalid search params: %v", err)
	}

	key := sources.Key(pf.source)
	if _, err := e.compiler.Registry().Lookup(key); err != nil {
		log.Fatalf("%v", err)
	}
	for _, msg := range validator.Validate(params) {
		log.Printf("Warning: %s", msg)
	}

	saved, err := e.openStore().Save(store.SavedSearch{ID: id, SourceKey: key, Title: title, Params: params})
	if err != nil {
		log.Fatalf("Failed to save search: %v", err)
	}
	fmt.Printf("Saved %q as %s\n", saved.Title, saved.ID)
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	var (
		configPath string
		jsonOutput bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&jsonOutput, "json", false, "Output saved searches as JSON")
	fs.Parse(args)

	list, err := loadEnv(configPath).openStore().List()
	if err != nil {
		log.Fatalf("Failed to list saved searches: %v", err)
	}

	if jsonOutput {
		if list == nil {
			list = []store.SavedSearch{}
		}
		if err := preview.JSON(os.Stdout, list); err != nil {
			log.Fatalf("Failed to format JSON output: %v", err)
		}
		return
	}
	preview.SavedSearches(os.Stdout, list)
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)

	var (
		configPath string
		engineName string
		jsonOutput bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.StringVar(&engineName, "engine", "", "Search engine override")
	fs.BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: saved search ID is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	e := loadEnv(configPath)
	saved, err := e.openStore().Get(fs.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	engine := e.engine(engineName)
	q := e.compiler.CompileOrEmpty(saved.SourceKey, saved.Params, engine)
	if q.IsEmpty() {
		log.Fatalf("Saved search %q targets a source that is no longer configured", saved.Title)
	}
	printResult(preview.Result{Source: saved.SourceKey, Engine: engine, Query: q}, jsonOutput)
}

func runDelete(args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	var configPath string
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: saved search ID is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := loadEnv(configPath).openStore().Delete(fs.Arg(0)); err != nil {
		log.Fatalf("Failed to delete saved search: %v", err)
	}
	fmt.Println("Deleted")
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	var (
		configPath string
		engineName string
	)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.StringVar(&engineName, "engine", "", "Search engine for exported links")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hirelab export [options] <OUTPUT>

Export saved searches. The format follows the OUTPUT extension:
  .html   browser bookmark file
  .md     Markdown list
  .zip    bundle with searches.yaml, bookmarks.html and searches.md (default)

Options:
`)
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}
	output := fs.Arg(0)

	e := loadEnv(configPath)
	list, err := e.openStore().List()
	if err != nil {
		log.Fatalf("Failed to list saved searches: %v", err)
	}
	entries := export.Entries(e.compiler, list, e.engine(engineName))

	switch {
	case strings.HasSuffix(output, ".html"), strings.HasSuffix(output, ".htm"):
		f, err := os.Create(output)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", output, err)
		}
		defer f.Close()
		if err := export.Bookmarks(f, entries); err != nil {
			log.Fatalf("Failed to export bookmarks: %v", err)
		}
	case strings.HasSuffix(output, ".md"):
		markdown, err := export.Markdown(entries)
		if err != nil {
			log.Fatalf("Failed to export markdown: %v", err)
		}
		if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", output, err)
		}
	default:
		if output, err = export.Archive(output, entries); err != nil {
			log.Fatalf("Failed to export archive: %v", err)
		}
	}
	log.Printf("Exported %d search(es) to %s", len(entries), output)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	var (
		configPath string
		listen     string
		noStore    bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config.toml")
	fs.StringVar(&listen, "listen", "", "Address to listen on (default from config, :8080)")
	fs.BoolVar(&noStore, "no-store", false, "Disable saved-search endpoints")
	fs.Parse(args)

	e := loadEnv(configPath)
	if listen == "" {
		listen = e.cfg.Listen
	}

	var st *store.Store
	if !noStore {
		st = e.openStore()
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           api.NewServer(e.compiler, st, e.cfg.Engine()).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: shutdown: %v", err)
		}
	}()

	log.Printf("[hirelab] Listening on %s", listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[hirelab] Fatal: %v", err)
	}
	log.Printf("[hirelab] Stopped")
}

func printResult(r preview.Result, jsonOutput bool) {
	if jsonOutput {
		if err := preview.JSON(os.Stdout, r); err != nil {
			log.Fatalf("Failed to format JSON output: %v", err)
		}
		return
	}
	preview.Print(os.Stdout, r)
}
