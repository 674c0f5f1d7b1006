package tables

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// ReadXLSX loads a raw OCR table dumped as a spreadsheet. The first sheet
// with any rows wins; OCR dumps carry a single sheet in practice.
func ReadXLSX(path string) (domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		return FromRows(rows), nil
	}

	return domain.RawTable{}, fmt.Errorf("no table data found in %s", path)
}
