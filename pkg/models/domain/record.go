package domain

import "time"

// CategoryKey is a canonical category identifier, e.g. "opening_balance".
// The set of legal keys is fixed per report type.
type CategoryKey string

// FiscalMonthTotal is the conventional pseudo-month used for a fiscal-year
// total column. It is excluded from month-level series.
const FiscalMonthTotal = 13

// Filing identifies one parsed report document: report type, the fiscal year
// of the filing and the quarter within it.
type Filing struct {
	ReportType string
	FiscalYear int
	Quarter    int
}

// ReportRecord is the canonical long-form unit after extraction: one amount
// for one category in one fiscal month (1..12, or 13 for the total column).
type ReportRecord struct {
	Category    CategoryKey
	FiscalMonth int
	Amount      float64
}

// QuarterlyExtract is the full validated record set for one filing.
type QuarterlyExtract struct {
	Filing  Filing
	Records []ReportRecord
}

// SeriesRow is one row of a merged time series. FiscalYear/FiscalMonth
// describe the period the value refers to; ReportFiscalYear/ReportQuarter
// identify the filing that reported it. Department report variants also carry
// the dept/fund/variable columns; cash report variants leave them zero.
type SeriesRow struct {
	Category    CategoryKey
	FiscalYear  int
	FiscalMonth int
	Month       int
	Amount      float64
	Quarter     int

	ReportFiscalYear int
	ReportQuarter    int

	DeptCode      string
	DeptMajorCode string
	Fund          string
	Variable      string
	TimePeriod    string
	AsOfDate      time.Time
}

// FilingRows pairs a filing with its persisted long-form rows, ready for the
// merge fold. Callers supply these newest filing first.
type FilingRows struct {
	Filing Filing
	Rows   []SeriesRow
}

// TimeSeries is the merged, deduplicated output for one report type.
type TimeSeries struct {
	ReportType string
	Rows       []SeriesRow
}

// CalendarMonth converts a fiscal month (July-start fiscal year) to its
// calendar month.
func CalendarMonth(fiscalMonth int) int {
	if fiscalMonth < 7 {
		return fiscalMonth + 6
	}
	return fiscalMonth - 6
}
