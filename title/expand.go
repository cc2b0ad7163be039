package title

import (
	"regexp"
	"strings"

	"github.com/c360studio/taxonorm/vocabulary/occupation"
)

// conjunctPattern splits a phrase on conjunction delimiters: a comma
// with an optional following "and"/"or", a bare " and ", or a bare
// " or ". The comma-with-conjunction alternative is listed first so
// ", and " consumes as one delimiter. A dangling conjunction at the
// end of a phrase (left behind when a suffix match consumed the final
// conjunct) is swallowed as a delimiter too.
var conjunctPattern = regexp.MustCompile(`(?i)\s*,\s*(?:and|or)\s+|\s*,\s*|\s+and\s+|\s+or\s+|\s+(?:and|or)\s*$`)

// Expansion is one derived sibling of a source title.
type Expansion struct {
	// ID is the canonical identifier for the expanded phrase.
	ID string

	// Name is the expanded phrase in display form.
	Name string

	// Kind is the rule that produced this expansion.
	Kind occupation.ExpansionType
}

// SplitConjuncts splits a phrase into its conjunction parts, trimmed,
// with empty parts dropped. A phrase with no conjunction markers comes
// back as a single part.
func SplitConjuncts(phrase string) []string {
	var parts []string
	for _, p := range conjunctPattern.Split(phrase, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Expand derives the expansion list for a raw title. The result always
// has at least one element; a title with no recognized conjunction
// structure yields a single entry of kind ExpansionNone carrying the
// cleaned title's own identifier. All branches are deterministic.
func Expand(raw string) []Expansion {
	clean := Normalize(raw).Title

	// Conjoined roles: when the title splits into two or more parts and
	// every part carries its own role suffix, each part stands alone.
	// The first part's domain prefix distributes onto bare-role parts,
	// so "Career Counselors and Advisors" yields CareerCounselors and
	// CareerAdvisors.
	if parts := SplitConjuncts(clean); len(parts) >= 2 && allHaveSuffix(parts) {
		first, _ := FindSuffix(parts[0])
		out := make([]Expansion, 0, len(parts))
		for _, part := range parts {
			split, _ := FindSuffix(part)
			name := part
			if split.Prefix == "" && first.Prefix != "" {
				name = first.Prefix + " " + part
			}
			out = appendExpansion(out, Expansion{
				ID:   Identifier(name),
				Name: name,
				Kind: occupation.ExpansionConjunct,
			})
		}
		return out
	}

	split, ok := FindSuffix(clean)
	if !ok {
		return singleExpansion(clean)
	}

	prefix := split.Prefix
	lowerPrefix := strings.ToLower(prefix)
	andCount := strings.Count(lowerPrefix, " and ")

	switch {
	case strings.Contains(prefix, ","):
		return expandList(prefix, split.Suffix, clean)

	case andCount == 1:
		return expandSimpleAnd(prefix, split.Suffix)

	case andCount > 1:
		// No commas but several "and"s: fall back to the list rule.
		return expandList(prefix, split.Suffix, clean)

	default:
		return singleExpansion(clean)
	}
}

// expandList distributes the outer suffix across a comma or conjunction
// list. A part that already carries its own role suffix is kept as-is;
// every other part gets the outer suffix appended. A list that
// collapses to a single part is not an expansion.
func expandList(prefix, suffix, clean string) []Expansion {
	parts := SplitConjuncts(prefix)
	if len(parts) < 2 {
		return singleExpansion(clean)
	}

	out := make([]Expansion, 0, len(parts))
	for _, part := range parts {
		name := part
		if _, ok := FindSuffix(part); !ok {
			name = part + " " + suffix
		}
		out = appendExpansion(out, Expansion{
			ID:   Identifier(name),
			Name: name,
			Kind: occupation.ExpansionList,
		})
	}
	return out
}

// expandSimpleAnd applies the single-"and" heuristics to a prefix with
// exactly one " and " and no commas.
func expandSimpleAnd(prefix, suffix string) []Expansion {
	idx := indexFold(prefix, " and ")
	first := strings.TrimSpace(prefix[:idx])
	second := strings.TrimSpace(prefix[idx+len(" and "):])

	// First conjunct is a complete role on its own: the second gets the
	// outer suffix and both stand independently.
	if _, ok := FindSuffix(first); ok {
		return []Expansion{
			{ID: Identifier(first), Name: first, Kind: occupation.ExpansionConjunct},
			{ID: Identifier(second + " " + suffix), Name: second + " " + suffix, Kind: occupation.ExpansionSharedSuffix},
		}
	}

	// Shared-modifier pattern: a single-word first conjunct borrows the
	// second conjunct's trailing modifier, so "Computer and Information
	// Systems Managers" yields Computer Systems Managers and
	// Information Systems Managers. The modifier must not itself be a
	// role noun.
	secondWords := strings.Fields(second)
	if len(secondWords) > 1 {
		last := secondWords[len(secondWords)-1]
		if len(strings.Fields(first)) == 1 && !IsRole(last) {
			left := first + " " + last + " " + suffix
			right := second + " " + suffix
			return []Expansion{
				{ID: Identifier(left), Name: left, Kind: occupation.ExpansionSharedModifier},
				{ID: Identifier(right), Name: right, Kind: occupation.ExpansionSharedModifier},
			}
		}
	}

	left := first + " " + suffix
	right := second + " " + suffix
	return []Expansion{
		{ID: Identifier(left), Name: left, Kind: occupation.ExpansionSharedSuffix},
		{ID: Identifier(right), Name: right, Kind: occupation.ExpansionSharedSuffix},
	}
}

// singleExpansion is the no-expansion result: one entry for the whole
// cleaned title.
func singleExpansion(clean string) []Expansion {
	return []Expansion{{
		ID:   Identifier(clean),
		Name: clean,
		Kind: occupation.ExpansionNone,
	}}
}

// allHaveSuffix reports whether every part carries a role suffix.
func allHaveSuffix(parts []string) bool {
	for _, part := range parts {
		if _, ok := FindSuffix(part); !ok {
			return false
		}
	}
	return true
}

// appendExpansion appends e unless its identifier is already present.
func appendExpansion(list []Expansion, e Expansion) []Expansion {
	for _, have := range list {
		if have.ID == e.ID {
			return list
		}
	}
	return append(list, e)
}

// indexFold returns the index of the first case-insensitive occurrence
// of sub in s. Both the callers' inputs are ASCII titles.
func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}
