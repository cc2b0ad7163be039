package occupation

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		EntityTitle,
		EntityShortName,
		EntityDescription,
		EntityCode,
		PredicateEntityCategory,
		EntityJobZone,
		EntityInclusionNote,
		ExpansionTitle,
		ExpansionParent,
		ExpansionParentCode,
		PredicateExpansionType,
		ConceptLabel,
		ConceptRelated,
	}

	for _, pred := range predicates {
		t.Run(pred, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(pred)
			if meta.Description == "" {
				t.Errorf("predicate %s not registered or missing description", pred)
			}
		})
	}
}
