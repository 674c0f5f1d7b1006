package validate

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Check validates the internal arithmetic consistency of a single extract.
//
// It first enforces that every expected category carries exactly twelve
// fiscal-month entries (the total pseudo-month is ignored). The check runs
// over the expected list, not just the categories present in the records: a
// row whose cells were all garbled parses to zero records, and an absent
// total would otherwise let its group reconcile vacuously. It then verifies
// each validation group: the per-month sum of the group's subcategories must
// agree with the reported total within the fixed tolerance. A failing group
// is fatal for the extract; the full per-month difference series is logged
// first since the root cause is typically a single anomalous period.
func Check(ctx context.Context, filing domain.Filing, records []domain.ReportRecord, categories []domain.CategoryKey, groups []domain.ValidationGroup) error {
	logger := zerolog.Ctx(ctx)

	monthCounts := make(map[domain.CategoryKey]int)
	for _, rec := range records {
		if rec.FiscalMonth == domain.FiscalMonthTotal {
			continue
		}
		monthCounts[rec.Category]++
	}
	expected := make(map[domain.CategoryKey]bool, len(categories))
	for _, category := range categories {
		expected[category] = true
		if monthCounts[category] != 12 {
			return &domain.ShapeMismatchError{
				Filing: filing,
				Want:   12,
				Got:    monthCounts[category],
				Detail: "incomplete month coverage for category " + string(category),
			}
		}
	}
	for category, count := range monthCounts {
		if !expected[category] && count != 12 {
			return &domain.ShapeMismatchError{
				Filing: filing,
				Want:   12,
				Got:    count,
				Detail: "incomplete month coverage for category " + string(category),
			}
		}
	}

	for _, group := range groups {
		diffs := groupDiffs(records, group)

		ok := true
		for _, diff := range diffs {
			if diff > domain.ReconciliationTolerance {
				ok = false
				break
			}
		}
		if ok {
			continue
		}

		for month, diff := range diffs {
			logger.Info().
				Str("report_type", filing.ReportType).
				Str("total", string(group.Total)).
				Int("fiscal_month", month).
				Float64("diff", diff).
				Msg("reconciliation difference")
		}
		return &domain.ReconciliationError{Total: group.Total, Diffs: diffs}
	}

	return nil
}

// groupDiffs computes |sum(subcategories) - total| per fiscal month.
func groupDiffs(records []domain.ReportRecord, group domain.ValidationGroup) map[int]float64 {
	members := make(map[domain.CategoryKey]bool, len(group.Categories))
	for _, c := range group.Categories {
		members[c] = true
	}

	sums := make(map[int]float64)
	totals := make(map[int]float64)
	for _, rec := range records {
		if rec.FiscalMonth == domain.FiscalMonthTotal {
			continue
		}
		if members[rec.Category] {
			sums[rec.FiscalMonth] += rec.Amount
		}
		if rec.Category == group.Total {
			totals[rec.FiscalMonth] += rec.Amount
		}
	}

	diffs := make(map[int]float64, len(totals))
	for month, total := range totals {
		diffs[month] = math.Abs(sums[month] - total)
	}
	return diffs
}
