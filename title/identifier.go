package title

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/c360studio/taxonorm/vocabulary/occupation"
)

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	nonWordPattern       = regexp.MustCompile(`[^\w\s-]`)
)

// Identifier converts a phrase into a canonical Pascal-case identifier.
// Parenthetical segments are dropped, punctuation becomes whitespace,
// and each word is either kept as a known uppercase acronym or
// capitalized. Hyphenated tokens are cased per sub-part and joined with
// no separator, as are the words themselves. Empty input yields empty
// output.
//
// The mapping is readable but not collision-free across unrelated
// phrases; callers resolve collisions by first-occurrence dedup.
func Identifier(phrase string) string {
	cleaned := parentheticalPattern.ReplaceAllString(phrase, " ")
	cleaned = nonWordPattern.ReplaceAllString(cleaned, " ")

	var sb strings.Builder
	for _, word := range strings.Fields(cleaned) {
		for _, part := range strings.Split(word, "-") {
			sb.WriteString(caseWord(part))
		}
	}
	return sb.String()
}

// caseWord returns the identifier form of a single word: the uppercase
// spelling for acronym-vocabulary members, otherwise first letter upper
// and the rest lower.
func caseWord(word string) string {
	if word == "" {
		return ""
	}

	upper := strings.ToUpper(word)
	if occupation.IsAcronym(upper) {
		return upper
	}

	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
