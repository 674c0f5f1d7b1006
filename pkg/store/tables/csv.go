package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// ReadCSV loads a raw OCR table grid cached as a CSV file. The grid has no
// semantic header; columns get positional labels "0".."N-1" sized to the
// widest row.
func ReadCSV(path string) (domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to open raw table: %w", err)
	}
	defer f.Close()

	return readGrid(f)
}

func readGrid(r io.Reader) (domain.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // OCR grids are ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read raw table: %w", err)
	}

	return FromRows(rows), nil
}

// FromRows builds a RawTable over an in-memory cell grid.
func FromRows(rows [][]string) domain.RawTable {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}
	return domain.RawTable{Columns: columns, Rows: rows}
}
