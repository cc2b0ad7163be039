package assemble

import (
	"log/slog"
	"sort"

	"github.com/c360studio/taxonorm/semparse"
	"github.com/c360studio/taxonorm/title"
	"github.com/c360studio/taxonorm/vocabulary/occupation"
)

// Record is one occupation dataset row, already mapped out of its
// source column names.
type Record struct {
	Code        string
	Title       string
	Description string
}

// Assembler accumulates entities across rows. Not safe for concurrent
// use; the pipeline runs one assembler per run.
type Assembler struct {
	logger   *slog.Logger
	parser   semparse.Parser
	jobZones map[string]string

	occupations   []Occupation
	expansions    []Expansion
	concepts      []Concept
	relationships []ConceptRelationship

	seenOccupation map[string]bool
	seenExpansion  map[string]bool
	seenConcept    map[string]bool
	seenRelation   map[string]bool

	stats Stats
}

// New creates an assembler. The parser is optional; nil means every
// title goes through the heuristic engine. jobZones maps occupation
// codes to job-zone values and may be nil.
func New(logger *slog.Logger, parser semparse.Parser, jobZones map[string]string) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		logger:         logger,
		parser:         parser,
		jobZones:       jobZones,
		seenOccupation: make(map[string]bool),
		seenExpansion:  make(map[string]bool),
		seenConcept:    make(map[string]bool),
		seenRelation:   make(map[string]bool),
	}
}

// Add processes one dataset row. Rows missing a code or a title are
// counted and skipped.
func (a *Assembler) Add(rec Record) {
	a.stats.Rows++

	if rec.Code == "" || rec.Title == "" {
		a.stats.Skipped++
		a.logger.Debug("skipping incomplete row", "code", rec.Code, "title", rec.Title)
		return
	}

	cleaned := title.Normalize(rec.Title)
	id := title.Identifier(cleaned.Title)
	if id == "" {
		a.stats.Skipped++
		a.logger.Debug("skipping row with empty identifier", "code", rec.Code, "title", rec.Title)
		return
	}

	category := occupation.CategoryStandard
	if cleaned.CategoryOther {
		category = occupation.CategoryAllOther
	}

	if !a.seenOccupation[id] {
		a.seenOccupation[id] = true
		a.occupations = append(a.occupations, Occupation{
			ID:          id,
			Name:        rec.Title,
			Description: rec.Description,
			Code:        rec.Code,
			ShortName:   cleaned.Title,
			Category:      category,
			JobZone:       a.jobZones[rec.Code],
			InclusionNote: cleaned.InclusionNote,
		})
	}

	expansions, concepts := a.derive(rec.Title)

	for _, e := range expansions {
		// An expansion identical to its parent adds nothing.
		if e.ID == id || a.seenExpansion[e.ID] {
			continue
		}
		a.seenExpansion[e.ID] = true
		a.expansions = append(a.expansions, Expansion{
			ID:         e.ID,
			Name:       e.Name,
			ParentCode: rec.Code,
			ParentID:   id,
			Type:       e.Kind,
		})
	}

	for _, c := range concepts {
		if !a.seenConcept[c.ID] {
			a.seenConcept[c.ID] = true
			a.concepts = append(a.concepts, Concept{ID: c.ID, Name: c.Name})
		}

		relKey := id + "\x00" + c.ID
		if a.seenRelation[relKey] {
			continue
		}
		a.seenRelation[relKey] = true
		a.relationships = append(a.relationships, ConceptRelationship{
			FromID: id,
			ToID:   c.ID,
			Type:   occupation.RelationshipRelatedConcept,
		})
	}
}

// derive splits one title into expansions and concepts, preferring the
// registered semantic parser and falling back to the heuristic engine
// when it is absent or fails.
func (a *Assembler) derive(raw string) ([]title.Expansion, []title.Concept) {
	if a.parser != nil {
		result, err := a.parser.Parse(raw)
		if err == nil && result != nil {
			return fromParseResult(result)
		}
		if err != nil {
			a.logger.Debug("semantic parse failed, using heuristics", "title", raw, "error", err)
		}
	}
	return title.Expand(raw), title.Concepts(raw)
}

// fromParseResult maps parser output onto the engine's types.
func fromParseResult(result *semparse.Result) ([]title.Expansion, []title.Concept) {
	kind := occupation.ExpansionNone
	if len(result.Expansions) > 1 {
		kind = occupation.ExpansionConjunct
	}

	var expansions []title.Expansion
	for _, name := range result.Expansions {
		if id := title.Identifier(name); id != "" {
			expansions = append(expansions, title.Expansion{ID: id, Name: name, Kind: kind})
		}
	}

	var concepts []title.Concept
	for _, label := range result.Concepts {
		if id := title.Identifier(label); id != "" {
			concepts = append(concepts, title.Concept{ID: id, Name: label})
		}
	}
	return expansions, concepts
}

// Finalize re-runs the dedup passes over the whole collections, sorts
// concepts lexicographically by id, and returns the output. First
// occurrence wins every dedup.
func (a *Assembler) Finalize() *Output {
	out := &Output{
		Occupations:   dedupOccupations(a.occupations),
		Expansions:    dedupExpansions(a.expansions),
		Concepts:      dedupConcepts(a.concepts),
		Relationships: dedupRelationships(a.relationships),
	}

	sort.Slice(out.Concepts, func(i, j int) bool {
		return out.Concepts[i].ID < out.Concepts[j].ID
	})

	a.stats.Occupations = len(out.Occupations)
	a.stats.Expansions = len(out.Expansions)
	a.stats.Concepts = len(out.Concepts)
	a.stats.Relationships = len(out.Relationships)

	return out
}

// Stats reports the run counters. Entity counts are populated by
// Finalize.
func (a *Assembler) Stats() Stats {
	return a.stats
}

func dedupOccupations(in []Occupation) []Occupation {
	seen := make(map[string]bool, len(in))
	out := make([]Occupation, 0, len(in))
	for _, o := range in {
		if seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		out = append(out, o)
	}
	return out
}

func dedupExpansions(in []Expansion) []Expansion {
	seen := make(map[string]bool, len(in))
	out := make([]Expansion, 0, len(in))
	for _, e := range in {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

func dedupConcepts(in []Concept) []Concept {
	seen := make(map[string]bool, len(in))
	out := make([]Concept, 0, len(in))
	for _, c := range in {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

func dedupRelationships(in []ConceptRelationship) []ConceptRelationship {
	seen := make(map[string]bool, len(in))
	out := make([]ConceptRelationship, 0, len(in))
	for _, r := range in {
		key := r.FromID + "\x00" + r.ToID
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
