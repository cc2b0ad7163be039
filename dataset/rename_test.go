package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRename_MappedColumnsLeadInDeclarationOrder(t *testing.T) {
	in := &Table{
		Columns: []string{"Element ID", "Element Name", "Scale ID"},
		Rows: [][]string{
			{"1.A.1", "Abilities", "IM"},
		},
	}

	out := Rename(in, []FieldRename{
		{From: "Element Name", To: "name"},
		{From: "Element ID", To: "id"},
	}, true)

	assert.Equal(t, []string{"name", "id", "Scale ID"}, out.Columns)
	assert.Equal(t, [][]string{{"Abilities", "1.A.1", "IM"}}, out.Rows)
}

func TestRename_UnmappedDroppedWithoutPassthrough(t *testing.T) {
	in := &Table{
		Columns: []string{"Code", "Title", "Internal Note"},
		Rows:    [][]string{{"11-1011.00", "Chief Executives", "x"}},
	}

	out := Rename(in, []FieldRename{
		{From: "Code", To: "code"},
		{From: "Title", To: "name"},
	}, false)

	assert.Equal(t, []string{"code", "name"}, out.Columns)
	assert.Equal(t, [][]string{{"11-1011.00", "Chief Executives"}}, out.Rows)
}

func TestRename_MissingSourceColumnSkipped(t *testing.T) {
	in := &Table{
		Columns: []string{"Code", "Title"},
		Rows:    [][]string{{"11-1011.00", "Chief Executives"}},
	}

	out := Rename(in, []FieldRename{
		{From: "Code", To: "code"},
		{From: "Job Zone", To: "job_zone"},
	}, true)

	assert.Equal(t, []string{"code", "Title"}, out.Columns)
	assert.Equal(t, [][]string{{"11-1011.00", "Chief Executives"}}, out.Rows)
}

func TestRename_PreservesRowOrder(t *testing.T) {
	in := &Table{
		Columns: []string{"Code"},
		Rows:    [][]string{{"b"}, {"a"}, {"c"}},
	}

	out := Rename(in, []FieldRename{{From: "Code", To: "code"}}, false)

	assert.Equal(t, [][]string{{"b"}, {"a"}, {"c"}}, out.Rows)
}

func TestRename_ShortRowPadded(t *testing.T) {
	in := &Table{
		Columns: []string{"Code", "Title"},
		Rows:    [][]string{{"11-1011.00"}},
	}

	out := Rename(in, []FieldRename{
		{From: "Title", To: "name"},
		{From: "Code", To: "code"},
	}, false)

	assert.Equal(t, [][]string{{"", "11-1011.00"}}, out.Rows)
}
