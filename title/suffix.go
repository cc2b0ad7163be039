package title

import (
	"strings"

	"github.com/c360studio/taxonorm/vocabulary/occupation"
)

// Split is the result of matching a role suffix at the end of a title:
// the matched suffix form as it appears in the title, and everything
// before it.
type Split struct {
	// Prefix is the domain portion preceding the suffix, trimmed.
	// Empty when the whole input is the role itself.
	Prefix string

	// Suffix is the matched role form, plural or singular, with the
	// title's original casing.
	Suffix string
}

// FindSuffix matches the known role vocabulary against the end of a
// title. For each role, the plural form is checked before the singular
// so the longer form wins when both apply; the first role in
// declaration order with a match wins overall. The match requires a
// word boundary: the role must be the whole input or be preceded by a
// space. The second return is false when no role matches.
func FindSuffix(s string) (Split, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Split{}, false
	}

	lower := strings.ToLower(trimmed)
	for _, role := range occupation.Roles {
		for _, form := range [2]string{occupation.Plural(role), role} {
			if !endsWithWord(lower, strings.ToLower(form)) {
				continue
			}
			cut := len(trimmed) - len(form)
			return Split{
				Prefix: strings.TrimSpace(trimmed[:cut]),
				Suffix: trimmed[cut:],
			}, true
		}
	}

	return Split{}, false
}

// IsRole reports whether the phrase is itself a role word: the suffix
// match consumes the whole input, leaving no domain prefix.
func IsRole(phrase string) bool {
	split, ok := FindSuffix(phrase)
	return ok && split.Prefix == ""
}

// endsWithWord reports whether s ends with form at a word boundary.
// Both arguments must already be lowercased.
func endsWithWord(s, form string) bool {
	if !strings.HasSuffix(s, form) {
		return false
	}
	if len(s) == len(form) {
		return true
	}
	return s[len(s)-len(form)-1] == ' '
}
