// Package occupation provides the occupational taxonomy vocabulary:
// the ordered role-suffix list, the acronym set, entity enums, and the
// graph predicates for occupation entities.
//
// # Semstreams Integration
//
// This package follows semstreams vocabulary patterns:
//   - Predicates use three-level dotted notation (domain.category.property)
//   - Predicates are registered in init() using vocabulary.Register()
//   - IRI mappings use vocabulary.WithIRI() for RDF export compatibility
//   - Metadata includes description and data type
//
// # Fixed vocabularies
//
// Roles is an ordered list: suffix-match priority is declaration order,
// so the slice must never be sorted or deduplicated at runtime. Acronyms
// is an uppercase membership set consulted by the identifier generator.
//
// # Usage
//
// Import the package to register predicates, then use predicate constants:
//
//	import (
//	    "github.com/c360studio/taxonorm/vocabulary/occupation"
//	    "github.com/c360studio/semstreams/message"
//	)
//
//	func buildTriples(entityID string, occ Occupation) []message.Triple {
//	    return []message.Triple{
//	        {Subject: entityID, Predicate: occupation.EntityTitle, Object: occ.Name},
//	        {Subject: entityID, Predicate: occupation.EntityCode, Object: occ.Code},
//	    }
//	}
package occupation
