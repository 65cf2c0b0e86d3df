package attrs

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// SanitizeValue strips all markup from raw, returning the remaining plain
// text. Use it for values sourced from untrusted metadata that may carry
// tags. The result is unescaped text; Render still applies entity escaping
// on output, so values are never escaped twice.
func SanitizeValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textPolicy().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// AttrSanitized sets key to the sanitized form of raw. Overwrite semantics
// match Attr.
func (b *Bag) AttrSanitized(key, raw string) *Bag {
	return b.Attr(key, SanitizeValue(raw))
}

func textPolicy() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		valuePolicy = bluemonday.StrictPolicy()
	})
	return valuePolicy
}
