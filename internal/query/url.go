package query

import (
	"fmt"
	"strings"
)

// Engine identifies a destination search engine.
type Engine string

const (
	EngineGoogle  Engine = "google"
	EngineBing    Engine = "bing"
	EngineTwitter Engine = "twitter"

	// DefaultEngine is used for any engine value outside the known set.
	DefaultEngine = EngineGoogle
)

var engineTemplates = map[Engine]string{
	EngineGoogle:  "https://www.google.com/search?q=",
	EngineBing:    "https://www.bing.com/search?q=",
	EngineTwitter: "https://twitter.com/search?q=",
}

// Engines lists the supported engines in display order.
func Engines() []Engine {
	return []Engine{EngineGoogle, EngineBing, EngineTwitter}
}

// Valid reports whether e is a known engine.
func (e Engine) Valid() bool {
	_, ok := engineTemplates[e]
	return ok
}

// ParseEngine maps user input to an Engine. Unknown names are an error so
// CLI and API callers can report them; BuildURL itself never fails.
func ParseEngine(name string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(name)))
	if e == "" {
		return DefaultEngine, nil
	}
	if !e.Valid() {
		return "", fmt.Errorf("unknown search engine %q", name)
	}
	return e, nil
}

// BuildURL percent-encodes query and appends it to the engine's search
// endpoint. Unknown engines fall back to DefaultEngine.
func BuildURL(query string, engine Engine) string {
	base, ok := engineTemplates[engine]
	if !ok {
		base = engineTemplates[DefaultEngine]
	}
	return base + EncodeComponent(query)
}

// EncodeComponent escapes s the way URI components are escaped in browsers:
// everything except ALPHA, DIGIT and -_.!~*'() becomes %XX of its UTF-8
// bytes. Spaces become %20, not "+".
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// BooleanQuery is a compiled query: the human-readable expression, its
// percent-encoded form, and the destination URL for one engine.
type BooleanQuery struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
	URL     string `json:"url"`
}

// IsEmpty reports whether q is the zero "no query yet" value.
func (q BooleanQuery) IsEmpty() bool {
	return q.Raw == ""
}

// NewBooleanQuery derives the encoded form and URL from raw.
func NewBooleanQuery(raw string, engine Engine) BooleanQuery {
	return BooleanQuery{
		Raw:     raw,
		Encoded: EncodeComponent(raw),
		URL:     BuildURL(raw, engine),
	}
}
