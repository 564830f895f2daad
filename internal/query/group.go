package query

import "strings"

// AndGroup sanitizes tokens and joins them with AND. A single surviving term
// is returned bare; two or more are parenthesized.
func AndGroup(tokens []string) string {
	return Join(sanitizeAll(tokens), "AND")
}

// OrGroup is AndGroup with OR as the operator.
func OrGroup(tokens []string) string {
	return Join(sanitizeAll(tokens), "OR")
}

// NotGroup prefixes every sanitized token with its own minus sign and joins
// them with a space.
func NotGroup(tokens []string) string {
	terms := sanitizeAll(tokens)
	if len(terms) == 0 {
		return ""
	}

	negated := make([]string, len(terms))
	for i, term := range terms {
		negated[i] = "-" + term
	}
	return strings.Join(negated, " ")
}

// Join combines already-sanitized terms with a Boolean operator using the
// same sizing rules as AndGroup. Empty terms are skipped.
func Join(terms []string, op string) string {
	kept := make([]string, 0, len(terms))
	for _, term := range terms {
		if term != "" {
			kept = append(kept, term)
		}
	}

	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	}
	return "(" + strings.Join(kept, " "+op+" ") + ")"
}

func sanitizeAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if s := Sanitize(token); s != "" {
			out = append(out, s)
		}
	}
	return out
}
