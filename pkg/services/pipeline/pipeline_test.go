package pipeline

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySource struct {
	filings []domain.Filing
	rows    map[domain.Filing][]domain.SeriesRow
}

func (m *memorySource) ListFilings(_ context.Context, reportType string) ([]domain.Filing, error) {
	var out []domain.Filing
	for _, f := range m.filings {
		if f.ReportType == reportType {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memorySource) GetRows(_ context.Context, filing domain.Filing) ([]domain.SeriesRow, error) {
	rows, ok := m.rows[filing]
	if !ok {
		return nil, errors.New("no rows for filing")
	}
	return rows, nil
}

// netCashFlowTable builds a plausible OCR grid for a net cash flow page: a
// preamble, the anchor row, then one row per category with 12 months plus the
// fiscal-year total. Closing balance is kept arithmetically consistent so the
// reconciliation group passes.
func netCashFlowTable(perturbation float64) domain.RawTable {
	columns := make([]string, 14)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}

	blank := make([]string, 14)
	preamble := []string{"CITY OF EXAMPLE", "QUARTERLY CITY MANAGERS REPORT"}
	anchor := make([]string, 14)
	anchor[0] = "TOTAL DISBURSEMENTS"

	excess := make([]float64, 12)
	opening := make([]float64, 12)
	tran := make([]float64, 12)
	closing := make([]float64, 12)
	for m := 0; m < 12; m++ {
		excess[m] = 10 + float64(m)
		opening[m] = 200
		tran[m] = 50
		closing[m] = excess[m] + opening[m] + tran[m]
	}
	closing[3] += perturbation

	row := func(values []float64) []string {
		cells := make([]string, 14)
		cells[0] = "label"
		sum := 0.0
		for m, v := range values {
			cells[m+1] = strconv.FormatFloat(v, 'f', 1, 64)
			sum += v
		}
		cells[13] = strconv.FormatFloat(sum, 'f', 1, 64)
		return cells
	}

	return domain.RawTable{
		Columns: columns,
		Rows: [][]string{
			{preamble[0]}, {preamble[1]}, blank, blank, blank,
			anchor,
			row(excess),
			row(opening),
			row(tran),
			row(closing),
		},
	}
}

func TestProcessFiling(t *testing.T) {
	ctx := context.Background()
	p := New(report.NewDefaultRegistry(), &memorySource{})
	filing := domain.Filing{ReportType: report.NetCashFlow, FiscalYear: 2023, Quarter: 2}

	t.Run("extracts a full quarter", func(t *testing.T) {
		extract, err := p.ProcessFiling(ctx, netCashFlowTable(0), filing)
		require.NoError(t, err)

		assert.Equal(t, filing, extract.Filing)
		// 4 categories x (12 months + total column)
		assert.Len(t, extract.Records, 52)

		months := 0
		for _, rec := range extract.Records {
			if rec.Category == "opening_balance" && rec.FiscalMonth != domain.FiscalMonthTotal {
				months++
			}
		}
		assert.Equal(t, 12, months)
	})

	t.Run("reconciliation failure aborts the filing", func(t *testing.T) {
		_, err := p.ProcessFiling(ctx, netCashFlowTable(1.0), filing)

		var reconcile *domain.ReconciliationError
		require.True(t, errors.As(err, &reconcile))
		assert.InDelta(t, 1.0, reconcile.Diffs[4], 0.001)
	})

	t.Run("missing anchor aborts the filing", func(t *testing.T) {
		table := domain.RawTable{Columns: []string{"0"}, Rows: [][]string{{"nothing here"}}}
		_, err := p.ProcessFiling(ctx, table, filing)

		var notFound *domain.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("unknown report type", func(t *testing.T) {
		_, err := p.ProcessFiling(ctx, netCashFlowTable(0), domain.Filing{ReportType: "nope"})
		assert.Error(t, err)
	})

	t.Run("department reports have no table window", func(t *testing.T) {
		_, err := p.ProcessFiling(ctx, netCashFlowTable(0), domain.Filing{ReportType: report.Positions})
		assert.Error(t, err)
	})
}

func TestBuildSeries(t *testing.T) {
	ctx := context.Background()

	filingQ2 := domain.Filing{ReportType: report.NetCashFlow, FiscalYear: 2023, Quarter: 2}
	filingQ1 := domain.Filing{ReportType: report.NetCashFlow, FiscalYear: 2023, Quarter: 1}

	rowsFor := func(amount float64) []domain.SeriesRow {
		var rows []domain.SeriesRow
		for _, category := range []domain.CategoryKey{
			"excess_of_receipts_over_disbursements", "opening_balance", "tran", "closing_balance",
		} {
			for m := 1; m <= 13; m++ {
				rows = append(rows, domain.SeriesRow{Category: category, FiscalMonth: m, Amount: amount})
			}
		}
		return rows
	}

	source := &memorySource{
		filings: []domain.Filing{filingQ2, filingQ1},
		rows: map[domain.Filing][]domain.SeriesRow{
			filingQ2: rowsFor(2),
			filingQ1: rowsFor(1),
		},
	}
	p := New(report.NewDefaultRegistry(), source)

	t.Run("merges and formats", func(t *testing.T) {
		series, err := p.BuildSeries(ctx, report.NetCashFlow)
		require.NoError(t, err)

		// 2 filings x 4 categories x 12 months; the total pseudo-month is gone.
		assert.Len(t, series.Rows, 96)

		first := series.Rows[0]
		assert.Equal(t, 2023, first.FiscalYear)
		assert.Equal(t, 2, first.Quarter)
		assert.Equal(t, domain.CategoryKey("Receipts - Disbursements"), first.Category)

		for _, row := range series.Rows {
			assert.NotEqual(t, domain.FiscalMonthTotal, row.FiscalMonth)
		}
	})

	t.Run("no filings", func(t *testing.T) {
		_, err := p.BuildSeries(ctx, report.Spending)
		assert.Error(t, err)
	})

	t.Run("unknown report type", func(t *testing.T) {
		_, err := p.BuildSeries(ctx, "nope")
		assert.Error(t, err)
	})
}

func TestListReportTypes(t *testing.T) {
	p := New(report.NewDefaultRegistry(), &memorySource{})

	defs := p.ListReportTypes(context.Background())
	require.Len(t, defs, 7)
	assert.Equal(t, report.FundBalances, defs[0].Name)
}

func TestListFilings(t *testing.T) {
	filing := domain.Filing{ReportType: report.NetCashFlow, FiscalYear: 2023, Quarter: 2}
	p := New(report.NewDefaultRegistry(), &memorySource{filings: []domain.Filing{filing}})

	t.Run("known report type", func(t *testing.T) {
		filings, err := p.ListFilings(context.Background(), report.NetCashFlow)
		require.NoError(t, err)
		assert.Equal(t, []domain.Filing{filing}, filings)
	})

	t.Run("unknown report type", func(t *testing.T) {
		_, err := p.ListFilings(context.Background(), "nope")
		assert.Error(t, err)
	})
}
