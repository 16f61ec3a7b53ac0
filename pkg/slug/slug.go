// Package slug derives URL-safe identifiers from display strings. The same
// rule is shared by products, categories, blogs, and coupon codes so that a
// slug generated from any of them round-trips through Make unchanged.
package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make lowercases the input, strips characters outside [a-z0-9\s-], collapses
// whitespace runs and repeated hyphens to a single hyphen, and trims leading
// and trailing hyphens. Make is idempotent: Make(Make(x)) == Make(x).
func Make(input string) string {
	out := strings.ToLower(input)
	out = disallowed.ReplaceAllString(out, "")
	out = whitespace.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Ensure returns existing unchanged when it is already set, otherwise it
// derives a slug from fallback. Entities generate their slug once at creation
// time; renames never regenerate it.
func Ensure(existing, fallback string) string {
	if trimmed := strings.TrimSpace(existing); trimmed != "" {
		return Make(trimmed)
	}
	return Make(fallback)
}
