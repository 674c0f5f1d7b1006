package merge

import (
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Merge folds a newest-first sequence of department-report filings into one
// deduplicated time series.
//
// Quarterly filings restate prior-period figures, so naive concatenation
// double-counts periods. The fold tracks which fiscal years a newer filing
// has already claimed: final actuals are claimed per row fiscal year
// (LatestFinalWins), adopted budget per filing fiscal year
// (OneBudgetRowPerFilingYear). The fold is inherently sequential: each
// filing's survivors depend on every newer filing.
func Merge(reportType string, filings []domain.FilingRows, policies []domain.DedupPolicy) (domain.TimeSeries, error) {
	claimedFinalYears := make(map[int]bool)
	claimedBudgetFilingYears := make(map[int]bool)

	var rows []domain.SeriesRow
	for _, filing := range filings {
		finalYearsSeen := make(map[int]bool)

		for _, row := range filing.Rows {
			switch {
			case hasPolicy(policies, domain.LatestFinalWins) && isFinalActual(row):
				if claimedFinalYears[row.FiscalYear] {
					continue
				}
				finalYearsSeen[row.FiscalYear] = true
			case hasPolicy(policies, domain.OneBudgetRowPerFilingYear) && isAdoptedBudget(row):
				if claimedBudgetFilingYears[filing.Filing.FiscalYear] {
					continue
				}
			}

			row.ReportFiscalYear = filing.Filing.FiscalYear
			row.ReportQuarter = filing.Filing.Quarter
			if len(row.DeptCode) >= 2 {
				row.DeptMajorCode = row.DeptCode[:2]
			}
			rows = append(rows, row)
		}

		for fy := range finalYearsSeen {
			claimedFinalYears[fy] = true
		}
		claimedBudgetFilingYears[filing.Filing.FiscalYear] = true
	}

	if hasPolicy(policies, domain.SupersedeYTDOnNewerFiling) {
		rows = supersedeYTD(rows)
	}

	if hasPolicy(policies, domain.LatestFinalWins) {
		if err := checkSingleFinal(rows); err != nil {
			return domain.TimeSeries{}, err
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ReportFiscalYear != rows[j].ReportFiscalYear {
			return rows[i].ReportFiscalYear > rows[j].ReportFiscalYear
		}
		return rows[i].ReportQuarter > rows[j].ReportQuarter
	})

	return domain.TimeSeries{ReportType: reportType, Rows: rows}, nil
}

// MergeCash concatenates cash-report filings. Cash reports never restate
// other quarters (each filing owns its own fiscal year and quarter), so the
// only reshaping is dropping the fiscal-year total column, stamping the
// filing's period, and deriving the calendar month.
func MergeCash(reportType string, filings []domain.FilingRows) domain.TimeSeries {
	var rows []domain.SeriesRow
	for _, filing := range filings {
		for _, row := range filing.Rows {
			if row.FiscalMonth == domain.FiscalMonthTotal {
				continue
			}
			row.FiscalYear = filing.Filing.FiscalYear
			row.Quarter = filing.Filing.Quarter
			row.Month = domain.CalendarMonth(row.FiscalMonth)
			row.ReportFiscalYear = filing.Filing.FiscalYear
			row.ReportQuarter = filing.Filing.Quarter
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FiscalYear != rows[j].FiscalYear {
			return rows[i].FiscalYear > rows[j].FiscalYear
		}
		return rows[i].Quarter > rows[j].Quarter
	})

	return domain.TimeSeries{ReportType: reportType, Rows: rows}
}

// supersedeYTD removes the year-to-date duplicates a Q4 filing leaves behind:
// actuals duplicated on (as_of_date, fund, dept_code) keep their first
// (newest-filing) occurrence, and year-end YTD readings survive only from the
// single most recent filing fiscal year.
func supersedeYTD(rows []domain.SeriesRow) []domain.SeriesRow {
	latestReportFY := 0
	for _, row := range rows {
		if row.ReportFiscalYear > latestReportFY {
			latestReportFY = row.ReportFiscalYear
		}
	}

	seen := make(map[string]bool)
	out := rows[:0]
	for _, row := range rows {
		if row.Variable == VariableActual {
			key := actualStateKey(row)
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		if isYearEndYTD(row) && row.ReportFiscalYear != latestReportFY {
			continue
		}
		out = append(out, row)
	}
	return out
}

// checkSingleFinal enforces the merge invariant: every authoritative
// full-year actual state is owned by exactly one filing. Two filings both
// surviving for the same state is a configuration defect, not a tie to break.
func checkSingleFinal(rows []domain.SeriesRow) error {
	owners := make(map[string]string)
	for _, row := range rows {
		if !isFinalActual(row) {
			continue
		}
		key := fmt.Sprintf("%d|%s|%s|%s|%d", row.FiscalYear, row.DeptCode, row.Fund, row.Category, row.FiscalMonth)
		owner := fmt.Sprintf("FY%d Q%d", row.ReportFiscalYear, row.ReportQuarter)
		if prev, ok := owners[key]; ok && prev != owner {
			return &domain.MergeConflictError{FiscalYear: row.FiscalYear, Key: key}
		}
		owners[key] = owner
	}
	return nil
}

// actualStateKey identifies one department's reading at one point in time.
// Category is deliberately absent: a newer filing's restatement supersedes
// the older reading even when the label text shifted between filings.
func actualStateKey(row domain.SeriesRow) string {
	return row.AsOfDate.Format(time.DateOnly) + "|" + row.Fund + "|" + row.DeptCode
}
