package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/fiscal-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Failure paths are easier to provoke against a mock driver than against a
// live DuckDB instance.
func TestExtractStore_QueryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("list filings query failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT DISTINCT report_fiscal_year").
			WillReturnError(errors.New("catalog corrupted"))

		_, err = s.ListFilings(ctx, "net-cash-flow")
		assert.ErrorContains(t, err, "list filings")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure surfaces the row error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectPrepare("INSERT INTO extract_rows").
			ExpectExec().
			WillReturnError(errors.New("constraint violation"))

		err = s.Add(ctx, store.Filing{ReportType: "net-cash-flow", FiscalYear: 2023, Quarter: 2},
			[]store.ExtractRow{{Category: "tran", FiscalYear: 2023, FiscalMonth: 1}})
		assert.ErrorContains(t, err, "insert row")
	})

	t.Run("get rows query failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT category, fiscal_year").
			WillReturnError(errors.New("io error"))

		_, err = s.GetRows(ctx, store.Filing{ReportType: "net-cash-flow", FiscalYear: 2023, Quarter: 2})
		assert.ErrorContains(t, err, "query extract rows")
	})
}
