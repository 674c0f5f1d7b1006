package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports that an anchor label was absent from a raw table.
type NotFoundError struct {
	Anchor string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("anchor %q not found in table", e.Anchor)
}

// UnknownReportTypeError reports a request for a report type outside the
// registered family.
type UnknownReportTypeError struct {
	Name string
}

func (e *UnknownReportTypeError) Error() string {
	return fmt.Sprintf("report type %q is not registered", e.Name)
}

// ShapeMismatchError reports that the extracted window does not line up with
// the expected category list (or month coverage) for a filing. Positional
// labeling makes this fatal: a best-effort guess would silently swap
// category values.
type ShapeMismatchError struct {
	Filing Filing
	Want   int
	Got    int
	Detail string
}

func (e *ShapeMismatchError) Error() string {
	tag := fmt.Sprintf("FY%02d Q%d", e.Filing.FiscalYear%100, e.Filing.Quarter)
	if e.Detail != "" {
		return fmt.Sprintf("parsing error for %s data in %s report: %s (want %d, got %d)",
			e.Filing.ReportType, tag, e.Detail, e.Want, e.Got)
	}
	return fmt.Sprintf("parsing error for %s data in %s report: want %d rows, got %d",
		e.Filing.ReportType, tag, e.Want, e.Got)
}

// ReconciliationError reports that subcategory sums disagree with the
// reported total beyond the allowed tolerance. Diffs carries the full
// per-fiscal-month difference series for diagnosis.
type ReconciliationError struct {
	Total CategoryKey
	Diffs map[int]float64
}

func (e *ReconciliationError) Error() string {
	months := make([]int, 0, len(e.Diffs))
	for m := range e.Diffs {
		months = append(months, m)
	}
	sort.Ints(months)
	parts := make([]string, 0, len(months))
	for _, m := range months {
		parts = append(parts, fmt.Sprintf("month %d: %.2f", m, e.Diffs[m]))
	}
	return fmt.Sprintf("reconciliation against %q exceeds tolerance %.1f: %s",
		e.Total, ReconciliationTolerance, strings.Join(parts, ", "))
}

// ConfigurationDriftError reports categories present in a series that have no
// entry in the presentation formatting table. Passing raw keys through would
// corrupt the public-facing schema, so this is fatal for the batch.
type ConfigurationDriftError struct {
	ReportType string
	Missing    []CategoryKey
}

func (e *ConfigurationDriftError) Error() string {
	keys := make([]string, len(e.Missing))
	for i, k := range e.Missing {
		keys[i] = string(k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("missing category replacements for %s: [%s]",
		e.ReportType, strings.Join(keys, ", "))
}

// MergeConflictError reports that two filings both survived dedup as the
// authoritative final for the same period. This is a configuration or logic
// defect; the merger never silently picks one.
type MergeConflictError struct {
	FiscalYear int
	Key        string
}

func (e *MergeConflictError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("multiple authoritative final rows survived for FY%d (%s)", e.FiscalYear, e.Key)
	}
	return fmt.Sprintf("multiple authoritative final rows survived for FY%d", e.FiscalYear)
}
