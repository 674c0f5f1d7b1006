package store

import "time"

// ExtractRow is the flat persisted shape of one long-form report row, shared
// by the DuckDB store and the processed CSV files. Department columns are
// empty for cash report types.
type ExtractRow struct {
	ReportType  string
	FiscalYear  int
	Quarter     int
	Category    string
	FiscalMonth int
	Amount      float64

	DeptCode   string
	Fund       string
	Variable   string
	TimePeriod string
	AsOfDate   time.Time
}

// Filing identifies one persisted filing of a report type.
type Filing struct {
	ReportType string
	FiscalYear int
	Quarter    int
}

// ExtractStats summarizes what is persisted for one report type.
type ExtractStats struct {
	FilingsCount int64
	RowsCount    int64
	NewestYear   int
	NewestQtr    int
}
