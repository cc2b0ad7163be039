package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/taxonorm/config"
	"github.com/c360studio/taxonorm/dataset"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Source.Dir = t.TempDir()
	cfg.Output.Dir = t.TempDir()
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	writeSource(t, cfg.Source.Dir, "occupations.tsv",
		"O*NET-SOC Code\tTitle\tDescription\n"+
			"11-3021.00\tComputer and Information Systems Managers\tPlan and direct.\n"+
			"15-1252.00\tSoftware Developers\tDesign software.\n")
	writeSource(t, cfg.Source.Dir, "job_zones.tsv",
		"O*NET-SOC Code\tJob Zone\n15-1252.00\t4\n")

	result, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesDiscovered)
	assert.Equal(t, 2, result.Assembled.Occupations)
	assert.Equal(t, 2, result.Assembled.Expansions)
	assert.Equal(t, 0, result.Published)

	occ, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, OccupationsFile))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "description", "code", "short_name", "category", "job_zone"}, occ.Columns)
	require.Len(t, occ.Rows, 2)
	assert.Equal(t, "4", occ.Field(occ.Rows[1], "job_zone"))

	exp, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, ExpansionsFile))
	require.NoError(t, err)
	require.Len(t, exp.Rows, 2)
	assert.Equal(t, "ComputerSystemsManagers", exp.Rows[0][0])

	con, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, ConceptsFile))
	require.NoError(t, err)
	require.NotEmpty(t, con.Rows)
	for i := 1; i < len(con.Rows); i++ {
		assert.Less(t, con.Rows[i-1][0], con.Rows[i][0])
	}

	rel, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, RelationshipsFile))
	require.NoError(t, err)
	for _, row := range rel.Rows {
		assert.Equal(t, "related_concept", rel.Field(row, "relationship_type"))
	}
}

func TestRun_MissingOccupationDatasetFails(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(context.Background(), cfg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupations.tsv")

	// A failing run writes nothing.
	entries, readErr := os.ReadDir(cfg.Output.Dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRun_StandardsPass(t *testing.T) {
	cfg := testConfig(t)
	writeSource(t, cfg.Source.Dir, "occupations.tsv",
		"O*NET-SOC Code\tTitle\tDescription\n11-1011.00\tChief Executives\tLead.\n")
	writeSource(t, cfg.Source.Dir, "industries.tsv",
		"NAICS Code\tNAICS Title\tDescription\n52\tFinance and Insurance\tMoney.\n")

	result, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.StandardsCopied)

	ind, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, "industries.tsv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "name", "description"}, ind.Columns)
	require.Len(t, ind.Rows, 1)
	assert.Equal(t, "52", ind.Rows[0][0])
}

func TestRun_StandardsFilterByName(t *testing.T) {
	cfg := testConfig(t)
	cfg.Datasets.Standards = []string{"education_level"}
	writeSource(t, cfg.Source.Dir, "occupations.tsv",
		"O*NET-SOC Code\tTitle\tDescription\n11-1011.00\tChief Executives\tLead.\n")
	writeSource(t, cfg.Source.Dir, "industries.tsv",
		"NAICS Code\tNAICS Title\tDescription\n52\tFinance and Insurance\tMoney.\n")

	result, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.StandardsCopied, "industry standard is filtered out")
}

func TestRun_JobZoneDatasetOptional(t *testing.T) {
	cfg := testConfig(t)
	writeSource(t, cfg.Source.Dir, "occupations.tsv",
		"O*NET-SOC Code\tTitle\tDescription\n15-1252.00\tSoftware Developers\tDesign.\n")

	result, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Assembled.Occupations)

	occ, err := dataset.ReadTable(filepath.Join(cfg.Output.Dir, OccupationsFile))
	require.NoError(t, err)
	assert.Empty(t, occ.Field(occ.Rows[0], "job_zone"))
}

func TestRun_SkipsRowsMissingCode(t *testing.T) {
	cfg := testConfig(t)
	writeSource(t, cfg.Source.Dir, "occupations.tsv",
		"O*NET-SOC Code\tTitle\tDescription\n"+
			"\tOrphan Title\t\n"+
			"15-1252.00\tSoftware Developers\tDesign.\n")

	result, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Assembled.Skipped)
	assert.Equal(t, 1, result.Assembled.Occupations)
}
