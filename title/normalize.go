package title

import (
	"regexp"
	"strings"
)

var (
	allOtherPattern  = regexp.MustCompile(`(?i),\s*all other\s*$`)
	includingPattern = regexp.MustCompile(`(?i),\s*including\s+(.+)\s*$`)
)

// Cleaned is a title with boilerplate suffixes stripped, plus the
// semantics the stripping removed.
type Cleaned struct {
	// Title is the cleaned title text.
	Title string

	// CategoryOther is true when the raw title ended in ", All Other".
	CategoryOther bool

	// InclusionNote is the text after ", Including", if any.
	InclusionNote string
}

// Normalize strips known boilerplate suffixes from a raw title. The
// ", All Other" marker is stripped first, then ", Including <tail>" is
// attempted on the result, so both may combine. Input that matches
// neither is returned unchanged.
func Normalize(raw string) Cleaned {
	c := Cleaned{Title: strings.TrimSpace(raw)}

	if loc := allOtherPattern.FindStringIndex(c.Title); loc != nil {
		c.Title = strings.TrimSpace(c.Title[:loc[0]])
		c.CategoryOther = true
	}

	if m := includingPattern.FindStringSubmatchIndex(c.Title); m != nil {
		c.InclusionNote = strings.TrimSpace(c.Title[m[2]:m[3]])
		c.Title = strings.TrimSpace(c.Title[:m[0]])
	}

	return c
}
