package occupation

// CategoryType classifies an occupation row by its source-title form.
type CategoryType string

const (
	// CategoryStandard is an ordinary occupation title.
	CategoryStandard CategoryType = "standard"

	// CategoryAllOther is a residual category title ("..., All Other").
	// These rows aggregate occupations not listed elsewhere in the
	// taxonomy.
	CategoryAllOther CategoryType = "all_other"
)

// ExpansionType identifies the rule that derived an expanded sibling.
type ExpansionType string

const (
	// ExpansionConjunct is a conjunct that carried its own role suffix
	// ("Treasurers and Controllers").
	ExpansionConjunct ExpansionType = "conjunct"

	// ExpansionSharedSuffix distributes the outer role suffix across
	// conjoined domain terms ("Tax Examiners and Collectors").
	ExpansionSharedSuffix ExpansionType = "shared_suffix"

	// ExpansionSharedModifier additionally copies the second conjunct's
	// trailing modifier onto the first ("Computer and Information
	// Systems Managers").
	ExpansionSharedModifier ExpansionType = "shared_modifier"

	// ExpansionList distributes the role suffix across a comma list
	// ("Transportation, Storage, and Distribution Managers").
	ExpansionList ExpansionType = "list"

	// ExpansionNone means the title produced a single identifier with no
	// siblings.
	ExpansionNone ExpansionType = "none"
)

// RelationshipType identifies an edge kind between entities.
type RelationshipType string

const (
	// RelationshipRelatedConcept links an occupation to a concept
	// extracted from its title. The relationship set carries concept
	// multiplicity; the concept set itself is globally deduplicated.
	RelationshipRelatedConcept RelationshipType = "related_concept"
)
