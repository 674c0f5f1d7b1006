package extract

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/store"
	"github.com/de-tools/fiscal-atlas/pkg/store/duckdb"
)

// Store persists validated per-filing extracts in DuckDB and reads them back
// newest filing first for the merge fold.
type Store interface {
	Add(ctx context.Context, filing store.Filing, rows []store.ExtractRow) error
	ListFilings(ctx context.Context, reportType string) ([]store.Filing, error)
	GetRows(ctx context.Context, filing store.Filing) ([]store.ExtractRow, error)
	GetStats(ctx context.Context, reportType string) (*store.ExtractStats, error)
}

type extractStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &extractStore{db: db}, nil
}

func (s *extractStore) Add(ctx context.Context, filing store.Filing, rows []store.ExtractRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO extract_rows (
			report_type, report_fiscal_year, report_quarter, category,
			fiscal_year, fiscal_month, amount, dept_code, fund,
			variable, time_period, as_of_date
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		var asOf any
		if !row.AsOfDate.IsZero() {
			asOf = row.AsOfDate
		}
		_, err = stmt.ExecContext(ctx,
			filing.ReportType,
			filing.FiscalYear,
			filing.Quarter,
			row.Category,
			row.FiscalYear,
			row.FiscalMonth,
			row.Amount,
			row.DeptCode,
			row.Fund,
			row.Variable,
			row.TimePeriod,
			asOf,
		)
		if err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return nil
}

func (s *extractStore) ListFilings(ctx context.Context, reportType string) ([]store.Filing, error) {
	query := `
		SELECT DISTINCT report_fiscal_year, report_quarter
		FROM extract_rows
		WHERE report_type = ?
		ORDER BY report_fiscal_year DESC, report_quarter DESC
	`
	rows, err := s.db.QueryContext(ctx, query, reportType)
	if err != nil {
		return nil, fmt.Errorf("list filings: %w", err)
	}
	defer rows.Close()

	filings := make([]store.Filing, 0)
	for rows.Next() {
		f := store.Filing{ReportType: reportType}
		if err := rows.Scan(&f.FiscalYear, &f.Quarter); err != nil {
			return nil, err
		}
		filings = append(filings, f)
	}
	return filings, rows.Err()
}

func (s *extractStore) GetRows(ctx context.Context, filing store.Filing) ([]store.ExtractRow, error) {
	query := `
		SELECT category, fiscal_year, fiscal_month, amount, dept_code, fund, variable, time_period, as_of_date
		FROM extract_rows
		WHERE report_type = ? AND report_fiscal_year = ? AND report_quarter = ?
		ORDER BY category, fiscal_month
	`
	rows, err := s.db.QueryContext(ctx, query, filing.ReportType, filing.FiscalYear, filing.Quarter)
	if err != nil {
		return nil, fmt.Errorf("query extract rows: %w", err)
	}
	defer rows.Close()
	return scanExtractRows(rows, filing)
}

func (s *extractStore) GetStats(ctx context.Context, reportType string) (*store.ExtractStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT report_fiscal_year * 10 + report_quarter) AS filings,
			COUNT(*) AS total_rows,
			COALESCE(MAX(report_fiscal_year), 0) AS newest_year
		FROM extract_rows
		WHERE report_type = ?
	`
	var stats store.ExtractStats
	if err := s.db.QueryRowContext(ctx, query, reportType).Scan(
		&stats.FilingsCount, &stats.RowsCount, &stats.NewestYear,
	); err != nil {
		return nil, fmt.Errorf("get extract stats: %w", err)
	}

	if stats.NewestYear > 0 {
		quarterQuery := `
			SELECT COALESCE(MAX(report_quarter), 0)
			FROM extract_rows
			WHERE report_type = ? AND report_fiscal_year = ?
		`
		if err := s.db.QueryRowContext(ctx, quarterQuery, reportType, stats.NewestYear).Scan(&stats.NewestQtr); err != nil {
			return nil, fmt.Errorf("get newest quarter: %w", err)
		}
	}
	return &stats, nil
}

func scanExtractRows(rows *sql.Rows, filing store.Filing) ([]store.ExtractRow, error) {
	records := make([]store.ExtractRow, 0)
	for rows.Next() {
		var (
			row      store.ExtractRow
			year     sql.NullInt64
			month    sql.NullInt64
			dept     sql.NullString
			fund     sql.NullString
			variable sql.NullString
			period   sql.NullString
			asOf     sql.NullTime
		)
		if err := rows.Scan(&row.Category, &year, &month, &row.Amount, &dept, &fund, &variable, &period, &asOf); err != nil {
			return nil, err
		}
		row.ReportType = filing.ReportType
		row.FiscalYear = filing.FiscalYear
		row.Quarter = filing.Quarter
		if year.Valid {
			row.FiscalYear = int(year.Int64)
		}
		row.FiscalMonth = int(month.Int64)
		row.DeptCode = dept.String
		row.Fund = fund.String
		row.Variable = variable.String
		row.TimePeriod = period.String
		if asOf.Valid {
			row.AsOfDate = asOf.Time.In(time.UTC)
		}
		records = append(records, row)
	}
	return records, rows.Err()
}
