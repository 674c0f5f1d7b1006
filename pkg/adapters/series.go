package adapters

import (
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/api"
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/models/store"
)

func MapDomainRecordToStoreRow(filing domain.Filing, rec domain.ReportRecord) store.ExtractRow {
	return store.ExtractRow{
		ReportType:  filing.ReportType,
		FiscalYear:  filing.FiscalYear,
		Quarter:     filing.Quarter,
		Category:    string(rec.Category),
		FiscalMonth: rec.FiscalMonth,
		Amount:      rec.Amount,
	}
}

func MapStoreRowToDomainSeriesRow(row store.ExtractRow) domain.SeriesRow {
	return domain.SeriesRow{
		Category:    domain.CategoryKey(row.Category),
		FiscalYear:  row.FiscalYear,
		FiscalMonth: row.FiscalMonth,
		Amount:      row.Amount,
		Quarter:     row.Quarter,
		DeptCode:    row.DeptCode,
		Fund:        row.Fund,
		Variable:    row.Variable,
		TimePeriod:  row.TimePeriod,
		AsOfDate:    row.AsOfDate,
	}
}

func MapDomainSeriesRowToApi(row domain.SeriesRow) api.SeriesRow {
	out := api.SeriesRow{
		Category:         string(row.Category),
		FiscalYear:       row.FiscalYear,
		FiscalMonth:      row.FiscalMonth,
		Month:            row.Month,
		Amount:           row.Amount,
		Quarter:          row.Quarter,
		ReportFiscalYear: row.ReportFiscalYear,
		ReportQuarter:    row.ReportQuarter,
		DeptCode:         row.DeptCode,
		DeptMajorCode:    row.DeptMajorCode,
		Fund:             row.Fund,
		Variable:         row.Variable,
		TimePeriod:       row.TimePeriod,
	}
	if !row.AsOfDate.IsZero() {
		out.AsOfDate = row.AsOfDate.Format(time.DateOnly)
	}
	return out
}

func MapDomainSeriesToApi(series domain.TimeSeries) api.Series {
	rows := make([]api.SeriesRow, 0, len(series.Rows))
	for _, row := range series.Rows {
		rows = append(rows, MapDomainSeriesRowToApi(row))
	}
	return api.Series{ReportType: series.ReportType, Rows: rows}
}

func MapDomainFilingToApi(filing domain.Filing) api.Filing {
	return api.Filing{
		ReportType: filing.ReportType,
		FiscalYear: filing.FiscalYear,
		Quarter:    filing.Quarter,
	}
}
