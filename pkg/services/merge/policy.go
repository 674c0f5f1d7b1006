package merge

import (
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Row tag values used by the dedup policies. These come from the report
// documents themselves: quarterly filings restate prior periods, and the
// variable/time_period pair is what distinguishes a settled full-year actual
// from an in-year estimate.
const (
	VariableActual        = "Actual"
	VariableAdoptedBudget = "Adopted Budget"

	TimePeriodFullYear = "Full Year"
	TimePeriodYTD      = "YTD"
)

// fiscalYearEndMonth is the calendar month a July-start fiscal year closes in.
const fiscalYearEndMonth = time.June

func hasPolicy(policies []domain.DedupPolicy, p domain.DedupPolicy) bool {
	for _, candidate := range policies {
		if candidate == p {
			return true
		}
	}
	return false
}

// isFinalActual reports whether a row is the authoritative full-year actual
// reading for its fiscal year.
func isFinalActual(row domain.SeriesRow) bool {
	return row.Variable == VariableActual && row.TimePeriod == TimePeriodFullYear
}

// isAdoptedBudget reports whether a row is a full-year adopted-budget figure.
// Adopted budget is filed once per fiscal year, so its dedup key is the
// filing's fiscal year rather than the row's.
func isAdoptedBudget(row domain.SeriesRow) bool {
	return row.Variable == VariableAdoptedBudget && row.TimePeriod == TimePeriodFullYear
}

// isYearEndYTD reports whether a row is a year-to-date reading taken at the
// fiscal year end, i.e. the reading a Q4 filing restates as a full-year value.
func isYearEndYTD(row domain.SeriesRow) bool {
	return row.TimePeriod == TimePeriodYTD &&
		!row.AsOfDate.IsZero() &&
		row.AsOfDate.Month() == fiscalYearEndMonth
}
