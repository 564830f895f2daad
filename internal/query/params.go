// Package query provides the building blocks of a Boolean sourcing query:
// structured search parameters, token sanitization, AND/OR/NOT grouping,
// and destination search engine URLs.
package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Education is the education-level qualifier understood by professional-network sources.
type Education string

const (
	EducationBachelors Education = "bachelors"
	EducationMasters   Education = "masters"
	EducationDoctoral  Education = "doctoral"
)

// educationPhrases are inserted verbatim. "PhD OR Doctoral" is a Boolean
// sub-expression and must not be quoted.
var educationPhrases = map[Education]string{
	EducationBachelors: "Bachelor",
	EducationMasters:   "Master",
	EducationDoctoral:  "PhD OR Doctoral",
}

// Phrase returns the literal search phrase for the education level.
func (e Education) Phrase() string {
	return educationPhrases[e]
}

// Valid reports whether e is one of the known education levels.
func (e Education) Valid() bool {
	_, ok := educationPhrases[e]
	return ok
}

// UnmarshalText rejects unknown education levels.
func (e *Education) UnmarshalText(text []byte) error {
	v := Education(strings.TrimSpace(string(text)))
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown education level %q", string(text))
	}
	*e = v
	return nil
}

// EmploymentStatus is the employment-status hashtag qualifier.
type EmploymentStatus string

const (
	StatusOpenToWork EmploymentStatus = "opentowork"
	StatusHiring     EmploymentStatus = "hiring"
)

var statusHashtags = map[EmploymentStatus]string{
	StatusOpenToWork: "#OpenToWork",
	StatusHiring:     "#Hiring",
}

// Hashtag returns the engine-recognized hashtag for the status.
func (s EmploymentStatus) Hashtag() string {
	return statusHashtags[s]
}

// Valid reports whether s is one of the known employment statuses.
func (s EmploymentStatus) Valid() bool {
	_, ok := statusHashtags[s]
	return ok
}

// UnmarshalText rejects unknown employment statuses.
func (s *EmploymentStatus) UnmarshalText(text []byte) error {
	v := EmploymentStatus(strings.TrimSpace(string(text)))
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown employment status %q", string(text))
	}
	*s = v
	return nil
}

// Params is the structured search intent for one query. Its JSON shape is
// the persisted contract for saved searches and must round-trip losslessly.
type Params struct {
	Role       string           `json:"role,omitempty" yaml:"role,omitempty"`
	Include    []string         `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude    []string         `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Location   string           `json:"location,omitempty" yaml:"location,omitempty"`
	Education  Education        `json:"education,omitempty" yaml:"education,omitempty"`
	Employer   string           `json:"employer,omitempty" yaml:"employer,omitempty"`
	OpenToWork EmploymentStatus `json:"openToWork,omitempty" yaml:"openToWork,omitempty"`
}

// ParseParams decodes params from their JSON form.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("failed to decode search params: %w", err)
	}
	return p, nil
}
