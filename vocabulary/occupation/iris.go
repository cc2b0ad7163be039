package occupation

// Namespace is the base IRI prefix for occupation vocabulary terms.
const Namespace = "https://taxonorm.dev/ontology/occupation/"

// EntityNamespace is the base IRI for occupation entity instances.
const EntityNamespace = "https://taxonorm.dev/entity/occupation/"

// Class IRIs define the types of occupation entities.
const (
	// ClassOccupation represents a canonical occupation drawn from a
	// source taxonomy row.
	ClassOccupation = Namespace + "Occupation"

	// ClassExpansion represents a derived sibling occupation produced by
	// conjunction expansion.
	ClassExpansion = Namespace + "ExpandedOccupation"

	// ClassConcept represents a normalized domain or role token shared
	// across occupations.
	ClassConcept = Namespace + "Concept"
)

// Object Property IRIs define relationships between occupation entities.
const (
	// PropExpandsFrom links an expansion to its parent occupation.
	// Domain: ClassExpansion, Range: ClassOccupation
	PropExpandsFrom = Namespace + "expandsFrom"

	// PropHasConcept links an occupation to an extracted concept.
	// Domain: ClassOccupation, Range: ClassConcept
	PropHasConcept = Namespace + "hasConcept"
)

// Data Property IRIs define literal-valued attributes.
const (
	// PropCode is the external stable taxonomy code.
	PropCode = Namespace + "code"

	// PropJobZone is the job-zone preparation level.
	PropJobZone = Namespace + "jobZone"

	// PropExpansionType is the expansion rule that produced a sibling.
	PropExpansionType = Namespace + "expansionType"

	// PropInclusionNote is the "Including ..." tail stripped from a title.
	PropInclusionNote = Namespace + "inclusionNote"
)
