package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ExtractTableSchema = `
	CREATE TABLE IF NOT EXISTS extract_rows (
		report_type VARCHAR NOT NULL,
		report_fiscal_year INTEGER NOT NULL,
		report_quarter INTEGER NOT NULL,
		category VARCHAR NOT NULL,
		fiscal_year INTEGER,
		fiscal_month INTEGER,
		amount DOUBLE,
		dept_code VARCHAR,
		fund VARCHAR,
		variable VARCHAR,
		time_period VARCHAR,
		as_of_date TIMESTAMP
	);
`

var bootQueries = []string{
	ExtractTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

type txKey struct{}

func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
