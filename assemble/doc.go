// Package assemble turns occupation dataset rows into the canonical
// entity collections: occupations, expansions, concepts, and concept
// relationships. The Assembler owns all cross-row deduplication; the
// title engine it drives is stateless.
package assemble
