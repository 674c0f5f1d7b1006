package format

import (
	"errors"
	"testing"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	table := domain.FormattingTable{
		"opening_balance": "Opening Balance",
		"closing_balance": "Closing Balance",
		"tran":            "TRAN",
	}

	t.Run("replaces keys with display labels", func(t *testing.T) {
		series := domain.TimeSeries{
			ReportType: "net-cash-flow",
			Rows: []domain.SeriesRow{
				{Category: "opening_balance", FiscalMonth: 1, Amount: 10},
				{Category: "tran", FiscalMonth: 1, Amount: 0},
			},
		}

		formatted, err := Apply(series, table)
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryKey("Opening Balance"), formatted.Rows[0].Category)
		assert.Equal(t, domain.CategoryKey("TRAN"), formatted.Rows[1].Category)
		// The input series is not mutated.
		assert.Equal(t, domain.CategoryKey("opening_balance"), series.Rows[0].Category)
	})

	t.Run("unmapped category stops the batch", func(t *testing.T) {
		series := domain.TimeSeries{
			ReportType: "net-cash-flow",
			Rows: []domain.SeriesRow{
				{Category: "opening_balance"},
				{Category: "new_unmapped_category"},
			},
		}

		_, err := Apply(series, table)

		var drift *domain.ConfigurationDriftError
		require.True(t, errors.As(err, &drift))
		assert.Equal(t, "net-cash-flow", drift.ReportType)
		assert.Equal(t, []domain.CategoryKey{"new_unmapped_category"}, drift.Missing)
	})

	t.Run("idempotent when labels map to themselves", func(t *testing.T) {
		selfTable := domain.FormattingTable{
			"Opening Balance": "Opening Balance",
			"Closing Balance": "Closing Balance",
			"TRAN":            "TRAN",
		}
		series := domain.TimeSeries{
			ReportType: "net-cash-flow",
			Rows: []domain.SeriesRow{
				{Category: "Opening Balance", Amount: 10},
				{Category: "TRAN", Amount: 0},
			},
		}

		once, err := Apply(series, selfTable)
		require.NoError(t, err)
		twice, err := Apply(once, selfTable)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("merge overlays key by key", func(t *testing.T) {
		base := domain.FormattingTable{
			"opening_balance": "Opening Balance",
			"tran":            "TRAN",
		}
		overrides := domain.FormattingTable{
			"tran":  "Tax and Revenue Anticipation Notes",
			"extra": "Extra",
		}

		merged := MergeCatalog(base, overrides)

		assert.Equal(t, "Opening Balance", merged["opening_balance"])
		assert.Equal(t, "Tax and Revenue Anticipation Notes", merged["tran"])
		assert.Equal(t, "Extra", merged["extra"])
		// Inputs untouched.
		assert.Equal(t, "TRAN", base["tran"])
	})
}
