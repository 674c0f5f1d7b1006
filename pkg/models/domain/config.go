package domain

// ValidationGroup names a total category and the subcategories whose
// per-month sums must reconcile with it.
type ValidationGroup struct {
	Total      CategoryKey
	Categories []CategoryKey
}

// ReconciliationTolerance is the maximum allowed absolute difference between
// a reported total and the sum of its subcategories. It absorbs OCR rounding
// noise in the source PDFs without masking real reconciliation breaks.
const ReconciliationTolerance = 0.3

// DedupPolicy selects one of the fixed merge dedup rules. Report types
// compose these instead of inlining restatement conditionals.
type DedupPolicy int

const (
	// LatestFinalWins drops a "final actual, full year" row when a newer
	// filing already reported that fiscal year as final.
	LatestFinalWins DedupPolicy = iota
	// OneBudgetRowPerFilingYear drops full-year adopted-budget rows beyond
	// the first filing of a given filing fiscal year.
	OneBudgetRowPerFilingYear
	// SupersedeYTDOnNewerFiling drops end-of-year YTD readings that a newer
	// filing restates as full-year values.
	SupersedeYTDOnNewerFiling
)

func (p DedupPolicy) String() string {
	switch p {
	case LatestFinalWins:
		return "latest-final-wins"
	case OneBudgetRowPerFilingYear:
		return "one-budget-row-per-filing-year"
	case SupersedeYTDOnNewerFiling:
		return "supersede-ytd-on-newer-filing"
	}
	return "unknown"
}

// FormattingTable maps canonical category keys to display labels. It must be
// total over the categories that can appear in a report type's series.
type FormattingTable map[CategoryKey]string
