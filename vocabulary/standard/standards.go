package standard

import "github.com/c360studio/taxonorm/dataset"

// Standard describes one source taxonomy handled by the rename pass.
type Standard struct {
	// Name identifies the standard in logs and stats.
	Name string
	// File is the source filename looked for under the source dir.
	File string
	// Output is the filename written under the output dir.
	Output string
	// Fields maps source columns to canonical output columns. Output
	// column order follows declaration order here.
	Fields []dataset.FieldRename
	// Passthrough keeps unmapped source columns after the mapped ones.
	Passthrough bool
}

// Standards lists every taxonomy the rename pass handles. The
// occupation dataset is not in this table, it goes through the
// expansion engine instead.
var Standards = []Standard{
	{
		Name:   "industry",
		File:   "industries.tsv",
		Output: "industries.tsv",
		Fields: []dataset.FieldRename{
			{From: "NAICS Code", To: "code"},
			{From: "NAICS Title", To: "name"},
			{From: "Description", To: "description"},
		},
	},
	{
		Name:   "job_zone",
		File:   "job_zone_reference.tsv",
		Output: "job_zone_reference.tsv",
		Fields: []dataset.FieldRename{
			{From: "Job Zone", To: "id"},
			{From: "Name", To: "name"},
			{From: "Experience", To: "experience"},
			{From: "Education", To: "education"},
			{From: "Job Training", To: "training"},
		},
		// Job-zone releases occasionally add columns; keep them.
		Passthrough: true,
	},
	{
		Name:   "education_level",
		File:   "education_levels.tsv",
		Output: "education_levels.tsv",
		Fields: []dataset.FieldRename{
			{From: "Category", To: "id"},
			{From: "Education Level", To: "name"},
		},
	},
}

// Lookup returns the standard with the given name.
func Lookup(name string) (Standard, bool) {
	for _, s := range Standards {
		if s.Name == name {
			return s, true
		}
	}
	return Standard{}, false
}
