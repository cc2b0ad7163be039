// Package pipeline drives one normalization run end to end: discover
// source datasets, assemble entities, write output tables, and
// optionally publish to the knowledge graph.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/c360studio/taxonorm/assemble"
	"github.com/c360studio/taxonorm/config"
	"github.com/c360studio/taxonorm/dataset"
	"github.com/c360studio/taxonorm/graph"
	"github.com/c360studio/taxonorm/semparse"
	"github.com/c360studio/taxonorm/vocabulary/standard"
)

// Output filenames written under the configured output dir.
const (
	OccupationsFile   = "occupations.tsv"
	ExpansionsFile    = "expansions.tsv"
	ConceptsFile      = "concepts.tsv"
	RelationshipsFile = "concept_relationships.tsv"
)

// Result summarizes one run.
type Result struct {
	FilesDiscovered int
	Assembled       assemble.Stats
	StandardsCopied int
	Published       int
}

// Run executes one full normalization pass. Outputs are written only
// after assembly succeeds, so a failing run leaves no partial tables.
// pub may be nil when graph publishing is disabled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, pub *graph.Publisher) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := dataset.Discover(cfg.Source.Dir, cfg.Source.Patterns)
	if err != nil {
		return nil, fmt.Errorf("discover datasets: %w", err)
	}
	logger.Info("Discovered source datasets", "dir", cfg.Source.Dir, "count", len(files))

	byName := make(map[string]string, len(files))
	for _, f := range files {
		// First match wins when duplicate basenames exist; Discover
		// returns sorted paths so this stays deterministic.
		if _, ok := byName[filepath.Base(f)]; !ok {
			byName[filepath.Base(f)] = f
		}
	}

	occPath, ok := byName[cfg.Datasets.Occupations]
	if !ok {
		return nil, fmt.Errorf("occupation dataset %s not found under %s", cfg.Datasets.Occupations, cfg.Source.Dir)
	}

	occTable, err := dataset.ReadTable(occPath)
	if err != nil {
		return nil, err
	}

	jobZones, err := loadJobZones(cfg, byName, logger)
	if err != nil {
		return nil, err
	}

	parser := activeParser(ctx, logger)

	asm := assemble.New(logger, parser, jobZones)
	for _, row := range occTable.Rows {
		asm.Add(assemble.Record{
			Code:        occTable.Field(row, cfg.Datasets.CodeField),
			Title:       occTable.Field(row, cfg.Datasets.TitleField),
			Description: occTable.Field(row, cfg.Datasets.DescriptionField),
		})
	}
	out := asm.Finalize()

	if err := writeOutputs(cfg.Output.Dir, out); err != nil {
		return nil, err
	}

	copied, err := runStandards(cfg, byName, logger)
	if err != nil {
		return nil, err
	}

	published := 0
	if pub != nil {
		published, err = publishAll(ctx, pub, out)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		FilesDiscovered: len(files),
		Assembled:       asm.Stats(),
		StandardsCopied: copied,
		Published:       published,
	}

	logger.Info("Run complete",
		"occupations", result.Assembled.Occupations,
		"expansions", result.Assembled.Expansions,
		"concepts", result.Assembled.Concepts,
		"relationships", result.Assembled.Relationships,
		"standards", result.StandardsCopied,
		"published", result.Published)

	return result, nil
}

// activeParser returns the registered semantic parser, initialized, or
// nil when none is registered or initialization fails. Failure only
// costs the parser; the heuristic engine covers every title.
func activeParser(ctx context.Context, logger *slog.Logger) semparse.Parser {
	parser := semparse.Active()
	if parser == nil {
		return nil
	}
	if err := parser.Initialize(ctx); err != nil {
		logger.Warn("Semantic parser failed to initialize, using heuristics", "error", err)
		return nil
	}
	logger.Info("Semantic parser active")
	return parser
}

// loadJobZones reads the optional job-zone dataset into a code lookup.
func loadJobZones(cfg *config.Config, byName map[string]string, logger *slog.Logger) (map[string]string, error) {
	path, ok := byName[cfg.Datasets.JobZones]
	if !ok {
		logger.Debug("No job-zone dataset found", "file", cfg.Datasets.JobZones)
		return nil, nil
	}

	table, err := dataset.ReadTable(path)
	if err != nil {
		return nil, err
	}

	zones := make(map[string]string, len(table.Rows))
	for _, row := range table.Rows {
		code := table.Field(row, cfg.Datasets.CodeField)
		zone := table.Field(row, cfg.Datasets.JobZoneField)
		if code == "" || zone == "" {
			continue
		}
		if _, ok := zones[code]; !ok {
			zones[code] = zone
		}
	}
	return zones, nil
}

// writeOutputs writes the four entity tables.
func writeOutputs(dir string, out *assemble.Output) error {
	occ := &dataset.Table{
		Columns: []string{"id", "name", "description", "code", "short_name", "category", "job_zone"},
	}
	for _, o := range out.Occupations {
		occ.Rows = append(occ.Rows, []string{
			o.ID, o.Name, o.Description, o.Code, o.ShortName, string(o.Category), o.JobZone,
		})
	}

	exp := &dataset.Table{
		Columns: []string{"id", "name", "parent_code", "parent_id", "expansion_type"},
	}
	for _, e := range out.Expansions {
		exp.Rows = append(exp.Rows, []string{
			e.ID, e.Name, e.ParentCode, e.ParentID, string(e.Type),
		})
	}

	con := &dataset.Table{Columns: []string{"id", "name"}}
	for _, c := range out.Concepts {
		con.Rows = append(con.Rows, []string{c.ID, c.Name})
	}

	rel := &dataset.Table{Columns: []string{"from_id", "to_id", "relationship_type"}}
	for _, r := range out.Relationships {
		rel.Rows = append(rel.Rows, []string{r.FromID, r.ToID, string(r.Type)})
	}

	for name, table := range map[string]*dataset.Table{
		OccupationsFile:   occ,
		ExpansionsFile:    exp,
		ConceptsFile:      con,
		RelationshipsFile: rel,
	} {
		if err := dataset.WriteTable(filepath.Join(dir, name), table); err != nil {
			return err
		}
	}
	return nil
}

// runStandards runs the rename pass over every standards dataset
// present in the source tree. Absent datasets are skipped.
func runStandards(cfg *config.Config, byName map[string]string, logger *slog.Logger) (int, error) {
	selected := make(map[string]bool, len(cfg.Datasets.Standards))
	for _, name := range cfg.Datasets.Standards {
		selected[name] = true
	}

	copied := 0
	for _, s := range standard.Standards {
		if len(selected) > 0 && !selected[s.Name] {
			continue
		}

		path, ok := byName[s.File]
		if !ok {
			logger.Debug("Standard dataset not present", "standard", s.Name, "file", s.File)
			continue
		}

		table, err := dataset.ReadTable(path)
		if err != nil {
			return copied, err
		}

		renamed := dataset.Rename(table, s.Fields, s.Passthrough)
		if err := dataset.WriteTable(filepath.Join(cfg.Output.Dir, s.Output), renamed); err != nil {
			return copied, err
		}

		logger.Info("Copied standard", "standard", s.Name, "rows", len(renamed.Rows))
		copied++
	}
	return copied, nil
}

// publishAll publishes every finalized entity to the graph.
func publishAll(ctx context.Context, pub *graph.Publisher, out *assemble.Output) (int, error) {
	published := 0
	for _, o := range out.Occupations {
		if err := pub.PublishOccupation(ctx, o); err != nil {
			return published, err
		}
		published++
	}
	for _, e := range out.Expansions {
		if err := pub.PublishExpansion(ctx, e); err != nil {
			return published, err
		}
		published++
	}
	for _, c := range out.Concepts {
		if err := pub.PublishConcept(ctx, c); err != nil {
			return published, err
		}
		published++
	}
	for _, r := range out.Relationships {
		if err := pub.PublishRelationship(ctx, r); err != nil {
			return published, err
		}
		published++
	}
	return published, nil
}
