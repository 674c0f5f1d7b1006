package extract

import (
	"strconv"
	"strings"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// WindowOptions controls which slice of a raw table is extracted.
type WindowOptions struct {
	// Anchor is the cell label marking the row immediately before the data.
	Anchor string
	// StopAnchor optionally bounds the window; rows at and after the first
	// occurrence are excluded. Empty means "to the end of the table".
	StopAnchor string
	// MaxRows optionally caps the number of data rows taken after the anchor
	// (applied before empty-row filtering). Zero means no cap.
	MaxRows int
	// Months is the number of month value columns, normally 12.
	Months int
	// TotalColumn keeps the trailing fiscal-year total column when present.
	TotalColumn bool
}

// Window slices the fixed-shape numeric sub-table out of a raw OCR table:
// the rows strictly after the anchor row, restricted to the category column
// plus the month value columns. Rows that are empty across every month
// column are OCR artifacts and are dropped.
func Window(table domain.RawTable, opts WindowOptions) (domain.RawTable, error) {
	months := opts.Months
	if months == 0 {
		months = 12
	}

	start, err := anchorRow(table, opts.Anchor)
	if err != nil {
		return domain.RawTable{}, err
	}

	stop := len(table.Rows)
	if opts.StopAnchor != "" {
		if s, err := anchorRow(table, opts.StopAnchor); err == nil && s > start {
			stop = s
		}
	}
	if opts.MaxRows > 0 && start+1+opts.MaxRows < stop {
		stop = start + 1 + opts.MaxRows
	}

	columns := windowColumns(months, opts.TotalColumn && table.HasColumn(strconv.Itoa(months+1)))

	out := domain.RawTable{Columns: columns}
	for r := start + 1; r < stop; r++ {
		cells := make([]string, len(columns))
		empty := true
		for i, col := range columns {
			cells[i] = table.Cell(r, col)
			// Only the month columns count toward emptiness; a stray
			// label in column "0" alone is still an artifact row.
			if i >= 1 && i <= months && strings.TrimSpace(cells[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		out.Rows = append(out.Rows, cells)
	}

	return out, nil
}

// anchorRow returns the index of the first row containing a cell whose
// trimmed text equals the anchor.
func anchorRow(table domain.RawTable, anchor string) (int, error) {
	for r := range table.Rows {
		for _, cell := range table.Rows[r] {
			if strings.TrimSpace(cell) == anchor {
				return r, nil
			}
		}
	}
	return 0, &domain.NotFoundError{Anchor: anchor}
}

func windowColumns(months int, total bool) []string {
	n := 1 + months
	if total {
		n++
	}
	columns := make([]string, n)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}
	return columns
}
