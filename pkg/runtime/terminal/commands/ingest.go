package commands

import (
	"context"
	"fmt"
	"path"

	"github.com/de-tools/fiscal-atlas/pkg/adapters"
	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/models/store"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/de-tools/fiscal-atlas/pkg/store/csvfile"
	"github.com/spf13/cobra"
)

// DocumentSource lists and fetches raw report documents, newest first.
type DocumentSource interface {
	List(ctx context.Context, reportType string) ([]string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// TableAnalyzer converts one raw document into a positional table grid.
type TableAnalyzer interface {
	AnalyzeTable(ctx context.Context, document []byte) (domain.RawTable, error)
}

type IngestCmd struct {
	reportType string
	documents  DocumentSource
	analyzer   TableAnalyzer
	pipeline   *pipeline.Pipeline
	sinks      []Sink
}

// NewIngestCmd builds the command that pulls raw filings from the document
// bucket, runs table analysis, and persists the validated extracts.
func NewIngestCmd(p *pipeline.Pipeline, documents DocumentSource, analyzer TableAnalyzer, sinks []Sink) *cobra.Command {
	ic := &IngestCmd{documents: documents, analyzer: analyzer, pipeline: p, sinks: sinks}
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch raw report documents and extract their tables",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.reportType, "report", "", "Report type to ingest (e.g., net-cash-flow)")

	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func (ic *IngestCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	keys, err := ic.documents.List(ctx, ic.reportType)
	if err != nil {
		return fmt.Errorf("failed to list %s documents: %w", ic.reportType, err)
	}
	if len(keys) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No documents found for report type: %s\n", ic.reportType)
		return nil
	}

	for _, key := range keys {
		fy, q, err := csvfile.ParseFilingName(key)
		if err != nil {
			return fmt.Errorf("%s: %w", path.Base(key), err)
		}
		filing := domain.Filing{ReportType: ic.reportType, FiscalYear: fy, Quarter: q}

		document, err := ic.documents.Fetch(ctx, key)
		if err != nil {
			return err
		}

		table, err := ic.analyzer.AnalyzeTable(ctx, document)
		if err != nil {
			return fmt.Errorf("%s: %w", path.Base(key), err)
		}

		extracted, err := ic.pipeline.ProcessFiling(ctx, table, filing)
		if err != nil {
			return fmt.Errorf("%s: %w", path.Base(key), err)
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
		for _, sink := range ic.sinks {
			if err := sink.Add(ctx, storeFiling, rows); err != nil {
				return fmt.Errorf("failed to persist %s: %w", path.Base(key), err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ingested %s: FY%d Q%d, %d rows\n",
			path.Base(key), filing.FiscalYear, filing.Quarter, len(rows))
	}

	return nil
}
