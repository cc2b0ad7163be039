package dataset

// FieldRename maps a source column name to its canonical output name.
type FieldRename struct {
	From string
	To   string
}

// Rename produces a new table whose columns follow the rename map's
// declaration order. Source columns absent from the input are skipped.
// When passthrough is set, unmapped input columns follow the mapped
// ones in their original order; otherwise they are dropped. Row order
// is preserved.
func Rename(t *Table, fields []FieldRename, passthrough bool) *Table {
	var srcIdx []int
	var columns []string
	mapped := make(map[int]bool)

	for _, f := range fields {
		idx := t.ColumnIndex(f.From)
		if idx < 0 || mapped[idx] {
			continue
		}
		mapped[idx] = true
		srcIdx = append(srcIdx, idx)
		columns = append(columns, f.To)
	}

	if passthrough {
		for i, col := range t.Columns {
			if !mapped[i] {
				srcIdx = append(srcIdx, i)
				columns = append(columns, col)
			}
		}
	}

	out := &Table{Columns: columns, Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := make([]string, len(srcIdx))
		for i, idx := range srcIdx {
			if idx < len(row) {
				next[i] = row[idx]
			}
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}
