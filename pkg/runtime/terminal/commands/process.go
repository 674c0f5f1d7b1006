package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/de-tools/fiscal-atlas/pkg/adapters"
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/models/store"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/de-tools/fiscal-atlas/pkg/store/csvfile"
	"github.com/de-tools/fiscal-atlas/pkg/store/tables"
	"github.com/spf13/cobra"
)

// Sink receives validated per-filing extracts. Both the DuckDB store and the
// processed CSV store satisfy it.
type Sink interface {
	Add(ctx context.Context, filing store.Filing, rows []store.ExtractRow) error
}

type ProcessCmd struct {
	reportType string
	fiscalYear int
	quarter    int
	pipeline   *pipeline.Pipeline
	sinks      []Sink
}

func NewProcessCmd(p *pipeline.Pipeline, sinks []Sink) *cobra.Command {
	pc := &ProcessCmd{pipeline: p, sinks: sinks}
	cmd := &cobra.Command{
		Use:   "process <file>...",
		Short: "Extract and validate raw report tables",
		Args:  cobra.MinimumNArgs(1),
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.reportType, "report", "", "Report type of the raw tables (e.g., net-cash-flow)")
	cmd.Flags().IntVar(&pc.fiscalYear, "fiscal-year", 0, "Fiscal year of the filing (default: parsed from filename)")
	cmd.Flags().IntVar(&pc.quarter, "quarter", 0, "Quarter of the filing (default: parsed from filename)")

	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (pc *ProcessCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	for _, path := range args {
		filing, err := pc.filingFor(path)
		if err != nil {
			return err
		}

		table, err := readTable(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		extracted, err := pc.pipeline.ProcessFiling(ctx, table, filing)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		rows := make([]store.ExtractRow, len(extracted.Records))
		for i, rec := range extracted.Records {
			rows[i] = adapters.MapDomainRecordToStoreRow(filing, rec)
		}

		storeFiling := store.Filing{
			ReportType: filing.ReportType,
			FiscalYear: filing.FiscalYear,
			Quarter:    filing.Quarter,
		}
		for _, sink := range pc.sinks {
			if err := sink.Add(ctx, storeFiling, rows); err != nil {
				return fmt.Errorf("failed to persist %s: %w", filepath.Base(path), err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "processed %s: FY%d Q%d, %d rows\n",
			filepath.Base(path), filing.FiscalYear, filing.Quarter, len(rows))
	}

	return nil
}

func (pc *ProcessCmd) filingFor(path string) (domain.Filing, error) {
	fy, q := pc.fiscalYear, pc.quarter
	if fy == 0 || q == 0 {
		parsedFY, parsedQ, err := csvfile.ParseFilingName(path)
		if err != nil {
			return domain.Filing{}, fmt.Errorf("%s: %w (use --fiscal-year and --quarter)", filepath.Base(path), err)
		}
		if fy == 0 {
			fy = parsedFY
		}
		if q == 0 {
			q = parsedQ
		}
	}
	return domain.Filing{ReportType: pc.reportType, FiscalYear: fy, Quarter: q}, nil
}

func readTable(path string) (domain.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return tables.ReadXLSX(path)
	case ".csv":
		return tables.ReadCSV(path)
	default:
		return domain.RawTable{}, fmt.Errorf("unsupported table format %q", filepath.Ext(path))
	}
}
