package sources

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/f4ah6o/hirelab-go/internal/query"
)

func TestDefault(t *testing.T) {
	r := Default()

	wantSites := map[Key]string{
		LinkedIn:      "linkedin.com/in",
		GitHub:        "github.com",
		StackOverflow: "stackoverflow.com/users",
		Dribbble:      "dribbble.com",
		Xing:          "xing.com/profile",
		Twitter:       "twitter.com",
	}
	if r.Len() != len(wantSites) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(wantSites))
	}
	for key, site := range wantSites {
		s, err := r.Lookup(key)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", key, err)
		}
		if s.Site != site {
			t.Errorf("%s site = %q, want %q", key, s.Site, site)
		}
		if s.SiteRestriction() != "site:"+site {
			t.Errorf("%s SiteRestriction() = %q", key, s.SiteRestriction())
		}
		if !s.Enabled {
			t.Errorf("%s should be enabled", key)
		}
	}

	li, _ := r.Lookup(LinkedIn)
	if !li.SupportsQualifiers() {
		t.Error("linkedin should support qualifiers")
	}
	gh, _ := r.Lookup(GitHub)
	if gh.SupportsQualifiers() {
		t.Error("github should not support qualifiers")
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("not_a_real_source")
	if !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
	var use *UnknownSourceError
	if !errors.As(err, &use) || use.Key != "not_a_real_source" {
		t.Errorf("expected *UnknownSourceError with key, got %#v", err)
	}
}

func TestList_OrderAndIsolation(t *testing.T) {
	r := Default()
	list := r.List()

	var keys []Key
	for _, s := range list {
		keys = append(keys, s.Key)
	}
	want := []Key{LinkedIn, GitHub, StackOverflow, Dribbble, Xing, Twitter}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List() keys = %v, want %v", keys, want)
	}

	list[0].Site = "evil.example"
	list[5].Engines[0] = query.EngineBing
	tw, _ := r.Lookup(Twitter)
	li, _ := r.Lookup(LinkedIn)
	if li.Site != "linkedin.com/in" || tw.Engines[0] != query.EngineTwitter {
		t.Error("mutating List() result changed the registry")
	}
}

func TestEngines(t *testing.T) {
	r := Default()
	tw, _ := r.Lookup(Twitter)
	if want := []query.Engine{query.EngineTwitter, query.EngineGoogle, query.EngineBing}; !reflect.DeepEqual(tw.Engines, want) {
		t.Errorf("twitter engines = %v, want %v", tw.Engines, want)
	}
	so, _ := r.Lookup(StackOverflow)
	if want := []query.Engine{query.EngineGoogle, query.EngineBing}; !reflect.DeepEqual(so.Engines, want) {
		t.Errorf("stackoverflow engines = %v, want %v", so.Engines, want)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		list []Source
	}{
		{name: "missing key", list: []Source{{Site: "x.com"}}},
		{name: "blank site", list: []Source{{Key: "x", Site: "  "}}},
		{name: "duplicate", list: []Source{{Key: "x", Site: "x.com"}, {Key: "x", Site: "y.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.list...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMerge(t *testing.T) {
	r := Default()
	merged, err := r.Merge(
		Source{Key: GitHub, Label: "GitHub Users", Site: "github.com/users", Enabled: true},
		Source{Key: "gitlab", Label: "GitLab", Site: "gitlab.com", Enabled: true},
	)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.Len() != r.Len()+1 {
		t.Errorf("merged Len() = %d", merged.Len())
	}
	gh, _ := merged.Lookup(GitHub)
	if gh.Site != "github.com/users" {
		t.Errorf("github not replaced: %q", gh.Site)
	}
	if list := merged.List(); list[1].Key != GitHub || list[len(list)-1].Key != "gitlab" {
		t.Errorf("unexpected merge order: %v", list)
	}
	if orig, _ := r.Lookup(GitHub); orig.Site != "github.com" {
		t.Error("Merge mutated the receiver")
	}
}

func TestProfessionalQualifiers(t *testing.T) {
	tests := []struct {
		name   string
		params query.Params
		want   []string
	}{
		{name: "none", params: query.Params{}, want: nil},
		{name: "employer quoted", params: query.Params{Employer: "Acme Corp"}, want: []string{`"Acme Corp"`}},
		{name: "blank employer", params: query.Params{Employer: "  "}, want: nil},
		{
			name:   "all",
			params: query.Params{Employer: "Acme", Education: query.EducationDoctoral, OpenToWork: query.StatusOpenToWork},
			want:   []string{"Acme", "PhD OR Doctoral", "#OpenToWork"},
		},
		{name: "hashtag literal", params: query.Params{OpenToWork: query.StatusHiring}, want: []string{"#Hiring"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfessionalQualifiers(tt.params)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProfessionalQualifiers() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.toml")
	content := `
[[sources]]
key = "gitlab"
label = "GitLab"
site = "gitlab.com"
engines = ["bing", "google"]

[[sources]]
key = "wellfound"
site = "wellfound.com/u"
qualifiers = "professional"
disabled = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d sources", len(list))
	}
	if list[0].Label != "GitLab" || list[0].Engines[0] != query.EngineBing || list[0].SupportsQualifiers() {
		t.Errorf("unexpected gitlab source: %+v", list[0])
	}
	if list[1].Label != "wellfound" || list[1].Enabled || !list[1].SupportsQualifiers() {
		t.Errorf("unexpected wellfound source: %+v", list[1])
	}
}

func TestFromFile_Invalid(t *testing.T) {
	if _, err := FromFile([]FileSource{{Key: "x", Site: "x.com", Qualifiers: "magic"}}); err == nil {
		t.Error("expected error for unknown qualifiers")
	}
	if _, err := FromFile([]FileSource{{Key: "x", Site: "x.com", Engines: []string{"altavista"}}}); err == nil {
		t.Error("expected error for unknown engine")
	}
}
