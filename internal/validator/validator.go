// Package validator provides advisory checks for search parameters.
// Results are meant for UI feedback; they never block compilation.
package validator

import (
	"fmt"
	"log"
	"strings"

	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
)

// MsgRoleOrInclude is reported when neither a role nor include keywords are given.
const MsgRoleOrInclude = "role or include keywords required."

// Validate returns the error messages for p, or an empty list.
func Validate(p query.Params) []string {
	errors := []string{}
	if strings.TrimSpace(p.Role) == "" && len(p.Include) == 0 {
		errors = append(errors, MsgRoleOrInclude)
	}
	return errors
}

// Report holds the outcome of Check.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether there are no errors. Warnings do not count.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Validator checks params against a source registry.
type Validator struct {
	registry *sources.Registry
}

// New creates a Validator for the given registry.
func New(registry *sources.Registry) *Validator {
	return &Validator{registry: registry}
}

// Check runs Validate and adds warnings for fields the source will ignore
// and for repeated keywords. Repeats are reported, not removed.
func (v *Validator) Check(key sources.Key, p query.Params) Report {
	report := Report{Errors: Validate(p), Warnings: []string{}}

	src, err := v.registry.Lookup(key)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report
	}

	if !src.SupportsQualifiers() {
		for _, field := range setQualifierFields(p) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s is ignored for %s", field, src.Label))
		}
	}

	for _, dup := range duplicates(p.Include) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("include keyword %q is repeated", dup))
	}
	for _, dup := range duplicates(p.Exclude) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("exclude keyword %q is repeated", dup))
	}

	if len(report.Errors) > 0 {
		log.Printf("Validation for %s: %d error(s), %d warning(s)", key, len(report.Errors), len(report.Warnings))
	}
	return report
}

func setQualifierFields(p query.Params) []string {
	var fields []string
	if strings.TrimSpace(p.Employer) != "" {
		fields = append(fields, "employer")
	}
	if p.Education != "" {
		fields = append(fields, "education")
	}
	if p.OpenToWork != "" {
		fields = append(fields, "employment status")
	}
	return fields
}

// duplicates returns sanitized terms that occur more than once, in first-repeat order.
func duplicates(tokens []string) []string {
	seen := make(map[string]int, len(tokens))
	var out []string
	for _, token := range tokens {
		term := query.Sanitize(token)
		if term == "" {
			continue
		}
		seen[term]++
		if seen[term] == 2 {
			out = append(out, term)
		}
	}
	return out
}
