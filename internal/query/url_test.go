package query

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abcXYZ019", want: "abcXYZ019"},
		{in: "-_.!~*'()", want: "-_.!~*'()"},
		{in: "a b", want: "a%20b"},
		{in: "site:linkedin.com/in", want: "site%3Alinkedin.com%2Fin"},
		{in: `"New York"`, want: "%22New%20York%22"},
		{in: "C++ #Hiring", want: "C%2B%2B%20%23Hiring"},
		{in: "München", want: "M%C3%BCnchen"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := EncodeComponent(tt.in)
			if got != tt.want {
				t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
			}
			decoded, err := url.PathUnescape(got)
			if err != nil || decoded != tt.in {
				t.Errorf("PathUnescape(%q) = %q, %v; want %q", got, decoded, err, tt.in)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	q := "site:github.com Go"
	tests := []struct {
		engine Engine
		prefix string
	}{
		{engine: EngineGoogle, prefix: "https://www.google.com/search?q="},
		{engine: EngineBing, prefix: "https://www.bing.com/search?q="},
		{engine: EngineTwitter, prefix: "https://twitter.com/search?q="},
		{engine: Engine("duckduckgo"), prefix: "https://www.google.com/search?q="},
		{engine: Engine(""), prefix: "https://www.google.com/search?q="},
	}

	for _, tt := range tests {
		t.Run(string(tt.engine), func(t *testing.T) {
			got := BuildURL(q, tt.engine)
			if want := tt.prefix + EncodeComponent(q); got != want {
				t.Errorf("BuildURL() = %q, want %q", got, want)
			}
		})
	}
}

func TestParseEngine(t *testing.T) {
	if e, err := ParseEngine(""); err != nil || e != DefaultEngine {
		t.Errorf("ParseEngine(\"\") = %q, %v", e, err)
	}
	if e, err := ParseEngine(" Bing "); err != nil || e != EngineBing {
		t.Errorf("ParseEngine(\" Bing \") = %q, %v", e, err)
	}
	if _, err := ParseEngine("altavista"); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func TestNewBooleanQuery(t *testing.T) {
	raw := `site:linkedin.com/in "New York"`
	q := NewBooleanQuery(raw, EngineBing)
	if q.Raw != raw {
		t.Errorf("Raw = %q", q.Raw)
	}
	if q.Encoded != EncodeComponent(raw) {
		t.Errorf("Encoded = %q", q.Encoded)
	}
	if !strings.HasSuffix(q.URL, q.Encoded) || !strings.HasPrefix(q.URL, "https://www.bing.com/") {
		t.Errorf("URL = %q", q.URL)
	}
	if (BooleanQuery{}).IsEmpty() != true || q.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestParams_JSONRoundTrip(t *testing.T) {
	p := Params{
		Role:       "Engineer",
		Include:    []string{"React", "machine learning"},
		Exclude:    []string{"recruiter"},
		Location:   "Austin",
		Education:  EducationDoctoral,
		Employer:   "Acme",
		OpenToWork: StatusOpenToWork,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := ParseParams(data)
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip = %#v, want %#v", got, p)
	}
	if !strings.Contains(string(data), `"openToWork":"opentowork"`) {
		t.Errorf("unexpected JSON shape: %s", data)
	}
}

func TestParseParams_RejectsUnknownEnums(t *testing.T) {
	for _, in := range []string{
		`{"education":"kindergarten"}`,
		`{"openToWork":"retired"}`,
	} {
		if _, err := ParseParams([]byte(in)); err == nil {
			t.Errorf("ParseParams(%s) expected error", in)
		}
	}
}

func TestQualifierLiterals(t *testing.T) {
	if got := EducationDoctoral.Phrase(); got != "PhD OR Doctoral" {
		t.Errorf("doctoral phrase = %q", got)
	}
	if got := EducationBachelors.Phrase(); got != "Bachelor" {
		t.Errorf("bachelors phrase = %q", got)
	}
	if got := StatusHiring.Hashtag(); got != "#Hiring" {
		t.Errorf("hiring hashtag = %q", got)
	}
	if Education("phd").Phrase() != "" {
		t.Error("unknown education should have no phrase")
	}
}
