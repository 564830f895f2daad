package query

import "strings"

// specialChars are the characters search engines treat as Boolean operators.
const specialChars = "&|()!"

// Sanitize normalizes a free-text token into a safely quotable search term.
// Tokens containing a space or an operator character are wrapped in double
// quotes with inner quotes escaped. Blank input yields "".
func Sanitize(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}

	if strings.Contains(trimmed, " ") || strings.ContainsAny(trimmed, specialChars) {
		return `"` + strings.ReplaceAll(trimmed, `"`, `\"`) + `"`
	}

	return trimmed
}

// ParseArrayInput splits comma-separated user input into trimmed, non-empty
// pieces, preserving order.
func ParseArrayInput(input string) []string {
	result := []string{}
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
