package attrs

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// AddThemeClasses appends the values of the named theme tokens as classes,
// in the order the keys are given. Missing or empty tokens are skipped so
// partial manifests stay usable.
func (b *Bag) AddThemeClasses(cfg *theme.RendererConfig, tokenKeys ...string) *Bag {
	if cfg == nil || len(cfg.Tokens) == 0 {
		return b
	}
	for _, key := range tokenKeys {
		if value := strings.TrimSpace(cfg.Tokens[key]); value != "" {
			b.AddClass(value)
		}
	}
	return b
}

// ThemeVarsStyle folds the theme's CSS custom properties into the style
// attribute, sorted by variable name so output is deterministic. An
// existing style entry is overwritten, matching Attr semantics.
func (b *Bag) ThemeVarsStyle(cfg *theme.RendererConfig) *Bag {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return b
	}

	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var style strings.Builder
	for _, name := range names {
		if style.Len() > 0 {
			style.WriteByte(' ')
		}
		style.WriteString(name)
		style.WriteString(": ")
		style.WriteString(cfg.CSSVars[name])
		style.WriteByte(';')
	}
	return b.Attr("style", style.String())
}
