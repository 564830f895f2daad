package main

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/f4ah6o/hirelab-go/internal/query"
)

func parseParamFlags(t *testing.T, args ...string) (query.Params, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var pf paramFlags
	pf.register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return pf.params()
}

func TestParamFlags(t *testing.T) {
	got, err := parseParamFlags(t,
		"--role", "Engineer",
		"--include", " React, TS ,",
		"--exclude", "recruiter",
		"--location", "Austin",
		"--employer", "Acme",
		"--education", "masters",
		"--status", "hiring",
	)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	want := query.Params{
		Role:       "Engineer",
		Include:    []string{"React", "TS"},
		Exclude:    []string{"recruiter"},
		Location:   "Austin",
		Employer:   "Acme",
		Education:  query.EducationMasters,
		OpenToWork: query.StatusHiring,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params = %#v\nwant %#v", got, want)
	}
}

func TestParamFlags_InvalidEnum(t *testing.T) {
	if _, err := parseParamFlags(t, "--education", "phd"); err == nil {
		t.Error("expected error for unknown education")
	}
	if _, err := parseParamFlags(t, "--status", "busy"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestParamFlags_FileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	content := `{"role":"Designer","include":["Figma"],"location":"Paris"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := parseParamFlags(t, "--params", path, "--location", "Lyon")
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	want := query.Params{Role: "Designer", Include: []string{"Figma"}, Location: "Lyon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params = %#v\nwant %#v", got, want)
	}
}
