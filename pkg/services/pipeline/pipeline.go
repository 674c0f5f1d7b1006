package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/services/extract"
	"github.com/de-tools/fiscal-atlas/pkg/services/format"
	"github.com/de-tools/fiscal-atlas/pkg/services/merge"
	"github.com/de-tools/fiscal-atlas/pkg/services/report"
	"github.com/de-tools/fiscal-atlas/pkg/services/validate"
)

// ExtractSource supplies persisted per-filing extracts for the merge fold.
// ListFilings must return filings newest first: the fold's dedup state
// depends on newer filings being seen before older ones.
type ExtractSource interface {
	ListFilings(ctx context.Context, reportType string) ([]domain.Filing, error)
	GetRows(ctx context.Context, filing domain.Filing) ([]domain.SeriesRow, error)
}

// Pipeline runs the per-filing extraction steps and the cross-filing series
// build for the registered report family.
type Pipeline struct {
	registry report.Registry
	source   ExtractSource
}

func New(registry report.Registry, source ExtractSource) *Pipeline {
	return &Pipeline{registry: registry, source: source}
}

// ListReportTypes returns the registered report type definitions, sorted by
// name.
func (p *Pipeline) ListReportTypes(context.Context) []report.Definition {
	names := p.registry.ListReportTypes()
	defs := make([]report.Definition, 0, len(names))
	for _, name := range names {
		if def, err := p.registry.Get(name); err == nil {
			defs = append(defs, def)
		}
	}
	return defs
}

// ListFilings returns the processed filings for a report type, newest first.
func (p *Pipeline) ListFilings(ctx context.Context, reportType string) ([]domain.Filing, error) {
	if _, err := p.registry.Get(reportType); err != nil {
		return nil, err
	}
	return p.source.ListFilings(ctx, reportType)
}

// ProcessFiling turns one raw OCR table into a validated quarterly extract:
// window extraction, positional labeling, then reconciliation. Any failure is
// terminal for the filing; no partial extract is ever produced.
func (p *Pipeline) ProcessFiling(ctx context.Context, table domain.RawTable, filing domain.Filing) (domain.QuarterlyExtract, error) {
	logger := zerolog.Ctx(ctx)

	def, err := p.registry.Get(filing.ReportType)
	if err != nil {
		return domain.QuarterlyExtract{}, err
	}
	if def.Kind != report.KindCash {
		return domain.QuarterlyExtract{}, fmt.Errorf("report type %q has no table window configuration", filing.ReportType)
	}

	window, err := extract.Window(table, extract.WindowOptions{
		Anchor:      def.Anchor,
		StopAnchor:  def.StopAnchor,
		TotalColumn: def.TotalColumn,
	})
	if err != nil {
		return domain.QuarterlyExtract{}, err
	}

	records, err := extract.Label(window, def.Categories, filing)
	if err != nil {
		return domain.QuarterlyExtract{}, err
	}

	if err := validate.Check(ctx, filing, records, def.Categories, def.ValidationGroups); err != nil {
		return domain.QuarterlyExtract{}, err
	}

	logger.Info().
		Str("report_type", filing.ReportType).
		Int("fiscal_year", filing.FiscalYear).
		Int("quarter", filing.Quarter).
		Int("records", len(records)).
		Msg("filing processed")

	return domain.QuarterlyExtract{Filing: filing, Records: records}, nil
}

// BuildSeries merges every persisted filing of a report type, newest first,
// into one deduplicated time series and applies the presentation catalog.
// A failure on any filing aborts the whole build: a half-merged series would
// violate the no-duplicate-period invariant.
func (p *Pipeline) BuildSeries(ctx context.Context, reportType string) (domain.TimeSeries, error) {
	def, err := p.registry.Get(reportType)
	if err != nil {
		return domain.TimeSeries{}, err
	}

	filings, err := p.source.ListFilings(ctx, reportType)
	if err != nil {
		return domain.TimeSeries{}, fmt.Errorf("failed to list %s filings: %w", reportType, err)
	}
	if len(filings) == 0 {
		return domain.TimeSeries{}, fmt.Errorf("no processed filings for report type %q", reportType)
	}

	inputs := make([]domain.FilingRows, 0, len(filings))
	for _, filing := range filings {
		rows, err := p.source.GetRows(ctx, filing)
		if err != nil {
			return domain.TimeSeries{}, fmt.Errorf("failed to load FY%d Q%d rows: %w",
				filing.FiscalYear, filing.Quarter, err)
		}
		inputs = append(inputs, domain.FilingRows{Filing: filing, Rows: rows})
	}

	var series domain.TimeSeries
	switch def.Kind {
	case report.KindCash:
		series = merge.MergeCash(reportType, inputs)
	case report.KindDepartment:
		series, err = merge.Merge(reportType, inputs, def.DedupPolicies)
		if err != nil {
			return domain.TimeSeries{}, err
		}
	default:
		return domain.TimeSeries{}, fmt.Errorf("unknown report kind %q", def.Kind)
	}

	if def.Formatting != nil {
		series, err = format.Apply(series, def.Formatting)
		if err != nil {
			return domain.TimeSeries{}, err
		}
	}

	zerolog.Ctx(ctx).Info().
		Str("report_type", reportType).
		Int("filings", len(inputs)).
		Int("rows", len(series.Rows)).
		Msg("series built")

	return series, nil
}
