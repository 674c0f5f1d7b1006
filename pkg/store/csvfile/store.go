package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/store"
)

var header = []string{
	"category", "fiscal_year", "fiscal_month", "amount",
	"dept_code", "fund", "variable", "time_period", "as_of_date",
}

// Store reads and writes per-filing extracts as CSV files under
// <root>/<report-type>/FY<year>_Q<quarter>.csv. Discovery returns filings
// newest first, matching what the merge fold expects.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("processed directory is required")
	}
	return &Store{root: root}, nil
}

func (s *Store) Add(_ context.Context, filing store.Filing, rows []store.ExtractRow) error {
	dir := filepath.Join(s.root, filing.ReportType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, FilingName(filing.FiscalYear, filing.Quarter))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		asOf := ""
		if !row.AsOfDate.IsZero() {
			asOf = row.AsOfDate.Format(time.DateOnly)
		}
		record := []string{
			row.Category,
			strconv.Itoa(row.FiscalYear),
			strconv.Itoa(row.FiscalMonth),
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			row.DeptCode,
			row.Fund,
			row.Variable,
			row.TimePeriod,
			asOf,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) ListFilings(_ context.Context, reportType string) ([]store.Filing, error) {
	paths, err := filepath.Glob(filepath.Join(s.root, reportType, "*.csv"))
	if err != nil {
		return nil, err
	}

	filings := make([]store.Filing, 0, len(paths))
	for _, path := range paths {
		fy, q, err := ParseFilingName(path)
		if err != nil {
			// Stray files in the processed directory are not filings.
			continue
		}
		filings = append(filings, store.Filing{ReportType: reportType, FiscalYear: fy, Quarter: q})
	}

	sort.Slice(filings, func(i, j int) bool {
		if filings[i].FiscalYear != filings[j].FiscalYear {
			return filings[i].FiscalYear > filings[j].FiscalYear
		}
		return filings[i].Quarter > filings[j].Quarter
	})
	return filings, nil
}

func (s *Store) GetRows(_ context.Context, filing store.Filing) ([]store.ExtractRow, error) {
	path := filepath.Join(s.root, filing.ReportType, FilingName(filing.FiscalYear, filing.Quarter))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open processed file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return []store.ExtractRow{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}

	rows := make([]store.ExtractRow, 0, len(records)-1)
	for _, record := range records[1:] {
		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		row := store.ExtractRow{
			ReportType: filing.ReportType,
			FiscalYear: filing.FiscalYear,
			Quarter:    filing.Quarter,
			Category:   field("category"),
			DeptCode:   field("dept_code"),
			Fund:       field("fund"),
			Variable:   field("variable"),
			TimePeriod: field("time_period"),
		}
		row.FiscalMonth, _ = strconv.Atoi(field("fiscal_month"))
		row.Amount, _ = strconv.ParseFloat(field("amount"), 64)
		if asOf := field("as_of_date"); asOf != "" {
			row.AsOfDate, _ = time.Parse(time.DateOnly, asOf)
		}
		// Department rows describe periods other than the filing's own;
		// their fiscal_year column wins over the filename metadata.
		if fy := field("fiscal_year"); fy != "" {
			row.FiscalYear, _ = strconv.Atoi(fy)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
