package career

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold trims s and lower-cases it. A Caser is not safe for concurrent use,
// so one is built per call.
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// Fold is the case-insensitive comparison key used throughout the package.
func Fold(s string) string {
	return fold(s)
}

// Normalize resolves skill to its canonical form. Unknown skills are their own
// canonical form (trimmed, lower-cased). Normalize is idempotent.
func (c *Catalog) Normalize(skill string) string {
	key := fold(skill)
	if key == "" {
		return ""
	}
	if _, ok := c.canonicalKeys[key]; ok {
		return key
	}
	if canonical, ok := c.variantIndex[key]; ok {
		return canonical
	}
	return key
}
