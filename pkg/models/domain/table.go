package domain

// RawTable is the cell grid produced by the OCR/table service for one report
// page. Columns are positional string labels ("0", "1", ...) rather than
// semantic names: OCR output does not reliably preserve textual headers, so
// every downstream step addresses cells by position.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Cell returns the value at the given row for the given column label, or ""
// when the column is unknown or the row is ragged short.
func (t RawTable) Cell(row int, column string) string {
	idx := t.columnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func (t RawTable) columnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table carries the given column label.
func (t RawTable) HasColumn(column string) bool {
	return t.columnIndex(column) >= 0
}
