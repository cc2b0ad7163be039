package assemble

import "github.com/c360studio/taxonorm/vocabulary/occupation"

// Occupation is one canonical occupation entity.
type Occupation struct {
	ID          string
	Name        string
	Description string
	Code        string
	ShortName   string
	Category    occupation.CategoryType
	JobZone     string

	// InclusionNote is the "Including ..." tail stripped from the raw
	// title, published to the graph but not written to the occupation
	// table.
	InclusionNote string
}

// Expansion is one derived sibling occupation.
type Expansion struct {
	ID         string
	Name       string
	ParentCode string
	ParentID   string
	Type       occupation.ExpansionType
}

// Concept is one extracted domain or role concept.
type Concept struct {
	ID   string
	Name string
}

// ConceptRelationship links an occupation to one of its concepts.
type ConceptRelationship struct {
	FromID string
	ToID   string
	Type   occupation.RelationshipType
}

// Output is the finalized entity collections for one run.
type Output struct {
	Occupations   []Occupation
	Expansions    []Expansion
	Concepts      []Concept
	Relationships []ConceptRelationship
}

// Stats counts what one run did.
type Stats struct {
	Rows          int
	Skipped       int
	Occupations   int
	Expansions    int
	Concepts      int
	Relationships int
}
