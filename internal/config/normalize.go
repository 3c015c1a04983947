package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/errmatrix/internal/foundation/normalization"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var formatNormalizer = normalization.NewEnumNormalizer("output.format", map[string]string{
	"html":     FormatHTML,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
}, "")

// NormalizationResult captures adjustments made before defaults apply.
type NormalizationResult struct{ Warnings []string }

// Normalize canonicalizes enumerated and path fields in place. Unknown
// formats are left for Validate to reject.
func Normalize(c *Config) *NormalizationResult {
	res := &NormalizationResult{}

	if raw := c.Output.Format; strings.TrimSpace(raw) != "" {
		if f := formatNormalizer.Normalize(raw); f != "" && f != raw {
			res.Warnings = append(res.Warnings, warnChanged("output.format", raw, f))
			c.Output.Format = f
		}
	}

	if raw := c.Output.Dir; raw != "" {
		if cleaned := filepath.Clean(raw); cleaned != raw {
			res.Warnings = append(res.Warnings, warnChanged("output.dir", raw, cleaned))
			c.Output.Dir = cleaned
		}
	}

	c.Output.HighlightStyle = strings.ToLower(strings.TrimSpace(c.Output.HighlightStyle))
	return res
}

func warnChanged(field, from, to string) string {
	return fmt.Sprintf("normalized %s from %q to %q", field, from, to)
}
