// Package title implements the occupation-title normalization and
// cartesian-expansion engine.
//
// The engine is a deterministic, rule-based transformer over a
// constrained grammar of English noun-phrase conjunctions ending in a
// closed set of occupational role suffixes. Given a raw source title it
// derives a canonical identifier, a set of expanded sibling identifiers
// produced by distributing shared role suffixes and modifiers across
// conjuncts, and a set of extracted domain concepts.
//
// Every function here is pure and total: unmatched input falls back to
// defined branches, never to an error. The heuristic path is the
// primary algorithm, not a degraded mode; an external semantic parser
// (see package semparse) may replace its output when one is registered,
// but its absence changes nothing else.
package title
