package format

import (
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// Apply replaces canonical category keys with display labels, row-wise.
//
// Every distinct category in the series must be present in the table. An
// unmapped category means the extraction catalog and the presentation catalog
// have drifted apart, a configuration bug that must stop the batch, since
// passing raw keys through would corrupt the public-facing schema.
func Apply(series domain.TimeSeries, table domain.FormattingTable) (domain.TimeSeries, error) {
	if missing := unmappedCategories(series, table); len(missing) > 0 {
		return domain.TimeSeries{}, &domain.ConfigurationDriftError{
			ReportType: series.ReportType,
			Missing:    missing,
		}
	}

	rows := make([]domain.SeriesRow, len(series.Rows))
	for i, row := range series.Rows {
		row.Category = domain.CategoryKey(table[row.Category])
		rows[i] = row
	}
	return domain.TimeSeries{ReportType: series.ReportType, Rows: rows}, nil
}

func unmappedCategories(series domain.TimeSeries, table domain.FormattingTable) []domain.CategoryKey {
	seen := make(map[domain.CategoryKey]bool)
	var missing []domain.CategoryKey
	for _, row := range series.Rows {
		if seen[row.Category] {
			continue
		}
		seen[row.Category] = true
		if _, ok := table[row.Category]; !ok {
			missing = append(missing, row.Category)
		}
	}
	return missing
}
