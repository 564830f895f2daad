package sources

import "github.com/f4ah6o/hirelab-go/internal/query"

// Builtin returns the built-in source definitions.
func Builtin() []Source {
	webOnly := []query.Engine{query.EngineGoogle, query.EngineBing}
	return []Source{
		{Key: LinkedIn, Label: "LinkedIn", Site: "linkedin.com/in", Enabled: true, Engines: webOnly, Qualifiers: ProfessionalQualifiers},
		{Key: GitHub, Label: "GitHub", Site: "github.com", Enabled: true, Engines: webOnly},
		{Key: StackOverflow, Label: "Stack Overflow", Site: "stackoverflow.com/users", Enabled: true, Engines: webOnly},
		{Key: Dribbble, Label: "Dribbble", Site: "dribbble.com", Enabled: true, Engines: webOnly},
		{Key: Xing, Label: "Xing", Site: "xing.com/profile", Enabled: true, Engines: webOnly},
		{Key: Twitter, Label: "X (Twitter)", Site: "twitter.com", Enabled: true,
			Engines: []query.Engine{query.EngineTwitter, query.EngineGoogle, query.EngineBing}},
	}
}

// Default returns a registry of the built-in sources.
func Default() *Registry {
	r, err := New(Builtin()...)
	if err != nil {
		panic(err)
	}
	return r
}

// ProfessionalQualifiers emits employer, education and employment-status
// fragments, in that order. Employer is user text and gets sanitized; the
// education phrase and hashtag are fixed literals and are not.
func ProfessionalQualifiers(p query.Params) []string {
	var out []string
	if employer := query.Sanitize(p.Employer); employer != "" {
		out = append(out, employer)
	}
	if phrase := p.Education.Phrase(); phrase != "" {
		out = append(out, phrase)
	}
	if tag := p.OpenToWork.Hashtag(); tag != "" {
		out = append(out, tag)
	}
	return out
}

var qualifierProviders = map[string]QualifierProvider{
	"":             nil,
	"none":         nil,
	"professional": ProfessionalQualifiers,
}
