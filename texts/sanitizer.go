package texts

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
)

// Escaping is not idempotent: escape exactly once per output context, always from unescaped text.

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

var strictPolicy = bluemonday.StrictPolicy()

// NormalizeWhitespace turns every line break into a single space and trims the result.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(newlineReplacer.Replace(text))
}

// EscapeForBody prepares feed text for element content: normalized, then & < > " ' escaped.
func EscapeForBody(text string) string {
	return html.EscapeString(NormalizeWhitespace(text))
}

// EscapeForAttribute escapes text for a double-quoted attribute value. Whitespace is kept as is.
func EscapeForAttribute(text string) string {
	return html.EscapeString(text)
}

// StripHtml reduces feed markup to plain, unescaped text.
func StripHtml(htm string) string {
	plain := strictPolicy.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}
