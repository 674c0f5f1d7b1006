package extract

import (
	"errors"
	"strconv"
	"testing"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	filing := domain.Filing{ReportType: "net-cash-flow", FiscalYear: 2023, Quarter: 2}

	t.Run("positional labeling reshapes wide to long", func(t *testing.T) {
		window := domain.RawTable{
			Columns: positionalColumns(14),
			Rows: [][]string{
				monthRow("Opening Balance", 100, true),
				monthRow("Closing Balance", 200, true),
			},
		}
		categories := []domain.CategoryKey{"opening_balance", "closing_balance"}

		records, err := Label(window, categories, filing)
		require.NoError(t, err)

		// 2 categories x (12 months + total column)
		require.Len(t, records, 26)
		assert.Equal(t, domain.ReportRecord{Category: "opening_balance", FiscalMonth: 1, Amount: 101}, records[0])
		assert.Equal(t, domain.CategoryKey("closing_balance"), records[13].Category)

		total := records[12]
		assert.Equal(t, domain.FiscalMonthTotal, total.FiscalMonth)
		assert.InDelta(t, 1278.0, total.Amount, 0.001)
	})

	t.Run("row count mismatch is fatal", func(t *testing.T) {
		window := domain.RawTable{
			Columns: positionalColumns(13),
			Rows: [][]string{
				monthRow("Opening Balance", 100, false),
			},
		}
		categories := []domain.CategoryKey{"opening_balance", "closing_balance"}

		_, err := Label(window, categories, filing)

		var shape *domain.ShapeMismatchError
		require.True(t, errors.As(err, &shape))
		assert.Equal(t, 2, shape.Want)
		assert.Equal(t, 1, shape.Got)
		assert.Contains(t, shape.Error(), "net-cash-flow")
	})

	t.Run("unparseable cells are skipped", func(t *testing.T) {
		window := domain.RawTable{
			Columns: positionalColumns(4),
			Rows: [][]string{
				{"TRAN", "1,250.0", "-", "garbled"},
			},
		}

		records, err := Label(window, []domain.CategoryKey{"tran"}, filing)
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, 1, records[0].FiscalMonth)
		assert.InDelta(t, 1250.0, records[0].Amount, 0.001)
	})
}

func TestLabelReshapeIdempotence(t *testing.T) {
	filing := domain.Filing{ReportType: "net-cash-flow", FiscalYear: 2023, Quarter: 2}
	window := domain.RawTable{
		Columns: positionalColumns(14),
		Rows: [][]string{
			monthRow("Opening Balance", 100, true),
			monthRow("Closing Balance", 200, true),
		},
	}
	categories := []domain.CategoryKey{"opening_balance", "closing_balance"}

	records, err := Label(window, categories, filing)
	require.NoError(t, err)

	// Regroup the long records back into a wide grid and reshape again.
	regrouped := domain.RawTable{Columns: window.Columns}
	for _, category := range categories {
		cells := make([]string, len(window.Columns))
		cells[0] = string(category)
		for _, rec := range records {
			if rec.Category == category {
				cells[rec.FiscalMonth] = strconv.FormatFloat(rec.Amount, 'f', -1, 64)
			}
		}
		regrouped.Rows = append(regrouped.Rows, cells)
	}

	again, err := Label(regrouped, categories, filing)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		cell  string
		want  float64
		valid bool
	}{
		{"plain", "123.4", 123.4, true},
		{"thousands separators", "1,234,567.8", 1234567.8, true},
		{"dollar sign", "$42.0", 42.0, true},
		{"parenthesized negative", "(15.3)", -15.3, true},
		{"dollar and parentheses", "($1,000.5)", -1000.5, true},
		{"whitespace padded", "  7.0  ", 7.0, true},
		{"empty", "", 0, false},
		{"dash placeholder", "-", 0, false},
		{"garbled", "12a.4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.cell)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}
