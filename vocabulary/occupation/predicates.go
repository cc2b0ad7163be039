package occupation

import "github.com/c360studio/semstreams/vocabulary"

// Entity predicates define attributes for canonical occupations.
const (
	// EntityTitle is the occupation display name.
	EntityTitle = "occupation.entity.title"

	// EntityShortName is the cleaned title with boilerplate stripped.
	EntityShortName = "occupation.entity.short_name"

	// EntityDescription is the source description text.
	EntityDescription = "occupation.entity.description"

	// EntityCode is the external stable taxonomy code.
	EntityCode = "occupation.entity.code"

	// PredicateEntityCategory is the category predicate.
	// Values: standard, all_other
	PredicateEntityCategory = "occupation.entity.category"

	// EntityJobZone is the job-zone preparation level.
	EntityJobZone = "occupation.entity.job_zone"

	// EntityInclusionNote is the "Including ..." tail stripped from the
	// source title, when present.
	EntityInclusionNote = "occupation.entity.inclusion_note"
)

// Expansion predicates define attributes for derived sibling occupations.
const (
	// ExpansionTitle is the expanded sibling display name.
	ExpansionTitle = "occupation.expansion.title"

	// ExpansionParent links an expansion to its parent occupation.
	ExpansionParent = "occupation.expansion.parent"

	// ExpansionParentCode is the parent occupation's taxonomy code.
	ExpansionParentCode = "occupation.expansion.parent_code"

	// PredicateExpansionType is the expansion rule predicate.
	// Values: conjunct, shared_suffix, shared_modifier, list
	PredicateExpansionType = "occupation.expansion.type"
)

// Concept predicates define attributes for extracted domain concepts.
const (
	// ConceptLabel is the concept display name.
	ConceptLabel = "occupation.concept.label"

	// ConceptRelated links an occupation to an extracted concept.
	ConceptRelated = "occupation.concept.related"
)

func registerEntityPredicates() {
	vocabulary.Register(EntityTitle,
		vocabulary.WithDescription("Occupation display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(EntityShortName,
		vocabulary.WithDescription("Cleaned title with boilerplate stripped"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosAltLabel))

	vocabulary.Register(EntityDescription,
		vocabulary.WithDescription("Source description text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://purl.org/dc/terms/description"))

	vocabulary.Register(EntityCode,
		vocabulary.WithDescription("External stable taxonomy code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcIdentifier))

	vocabulary.Register(PredicateEntityCategory,
		vocabulary.WithDescription("Occupation category"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"category"))

	vocabulary.Register(EntityJobZone,
		vocabulary.WithDescription("Job-zone preparation level"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropJobZone))

	vocabulary.Register(EntityInclusionNote,
		vocabulary.WithDescription("Inclusion tail stripped from the source title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropInclusionNote))
}

func registerExpansionPredicates() {
	vocabulary.Register(ExpansionTitle,
		vocabulary.WithDescription("Expanded sibling display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(ExpansionParent,
		vocabulary.WithDescription("Parent occupation entity"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosBroader))

	vocabulary.Register(ExpansionParentCode,
		vocabulary.WithDescription("Parent occupation taxonomy code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcSource))

	vocabulary.Register(PredicateExpansionType,
		vocabulary.WithDescription("Expansion rule that produced this sibling"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropExpansionType))
}

func registerConceptPredicates() {
	vocabulary.Register(ConceptLabel,
		vocabulary.WithDescription("Concept display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(ConceptRelated,
		vocabulary.WithDescription("Concept extracted from an occupation title"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosRelated))
}

func init() {
	registerEntityPredicates()
	registerExpansionPredicates()
	registerConceptPredicates()
}
