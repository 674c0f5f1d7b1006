package pipeline

import (
	"context"

	"github.com/de-tools/fiscal-atlas/pkg/adapters"
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/models/store"
)

// RowStore is the persistence surface the pipeline reads extracts from. Both
// the DuckDB extract store and the processed CSV store satisfy it.
type RowStore interface {
	ListFilings(ctx context.Context, reportType string) ([]store.Filing, error)
	GetRows(ctx context.Context, filing store.Filing) ([]store.ExtractRow, error)
}

// StoreSource adapts a RowStore to the domain-typed ExtractSource.
type StoreSource struct {
	store RowStore
}

func NewStoreSource(s RowStore) *StoreSource {
	return &StoreSource{store: s}
}

func (s *StoreSource) ListFilings(ctx context.Context, reportType string) ([]domain.Filing, error) {
	filings, err := s.store.ListFilings(ctx, reportType)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Filing, len(filings))
	for i, f := range filings {
		out[i] = domain.Filing{ReportType: f.ReportType, FiscalYear: f.FiscalYear, Quarter: f.Quarter}
	}
	return out, nil
}

func (s *StoreSource) GetRows(ctx context.Context, filing domain.Filing) ([]domain.SeriesRow, error) {
	rows, err := s.store.GetRows(ctx, store.Filing{
		ReportType: filing.ReportType,
		FiscalYear: filing.FiscalYear,
		Quarter:    filing.Quarter,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.SeriesRow, len(rows))
	for i, row := range rows {
		out[i] = adapters.MapStoreRowToDomainSeriesRow(row)
	}
	return out, nil
}
