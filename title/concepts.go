package title

// Concept is a normalized domain or role token extracted from a title.
type Concept struct {
	// ID is the canonical concept identifier.
	ID string

	// Name is the concept's display form as it appeared in the title.
	Name string
}

// minConceptIdentifier is the identifier length a prefix part must
// exceed to count as a concept. Shorter fragments are connective noise
// ("of", "to") left over from conjunct splitting.
const minConceptIdentifier = 2

// Concepts extracts the deduplicated concept set from a raw title.
// The set is empty exactly when no role suffix is found: concepts only
// exist relative to the domain-prefix/role-suffix structure. Each
// conjunct of the prefix with a non-trivial identifier becomes a
// domain concept, and the matched suffix becomes the role-type
// concept. Order is first-seen order.
func Concepts(raw string) []Concept {
	clean := Normalize(raw).Title

	split, ok := FindSuffix(clean)
	if !ok {
		return nil
	}

	var out []Concept
	seen := make(map[string]bool)
	add := func(name string) {
		id := Identifier(name)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, Concept{ID: id, Name: name})
	}

	for _, part := range SplitConjuncts(split.Prefix) {
		if len(Identifier(part)) > minConceptIdentifier {
			add(part)
		}
	}
	add(split.Suffix)

	return out
}
