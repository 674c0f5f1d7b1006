package extract

import (
	"strconv"
	"strings"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Label assigns category identifiers to the extracted window rows by
// position and reshapes the wide grid into long-form records.
//
// OCR output carries no reliable text labels in the first column, so the
// ordered category list is configuration. The row count must match the
// category list exactly; misalignment would swap figures between categories.
func Label(window domain.RawTable, categories []domain.CategoryKey, filing domain.Filing) ([]domain.ReportRecord, error) {
	if len(window.Rows) != len(categories) {
		return nil, &domain.ShapeMismatchError{
			Filing: filing,
			Want:   len(categories),
			Got:    len(window.Rows),
		}
	}

	months := len(window.Columns) - 1 // column "0" is the category slot
	records := make([]domain.ReportRecord, 0, len(categories)*months)
	for r, category := range categories {
		for m := 1; m <= months; m++ {
			cell := window.Cell(r, strconv.Itoa(m))
			amount, ok := ParseAmount(cell)
			if !ok {
				// Blank or garbled OCR cells are dropped here; the
				// 12-month check surfaces the gap downstream.
				continue
			}
			records = append(records, domain.ReportRecord{
				Category:    category,
				FiscalMonth: m,
				Amount:      amount,
			})
		}
	}

	return records, nil
}

// ParseAmount parses a currency cell as written in the source PDFs: thousands
// separators, an optional dollar sign, and parentheses for negative values.
func ParseAmount(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" || s == "-" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}
