package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/fiscal-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/spf13/cobra"
)

type SeriesCmd struct {
	outPath  string
	pipeline *pipeline.Pipeline
	reporter *export.Reporter
}

func NewSeriesCmd(p *pipeline.Pipeline, reporter *export.Reporter) *cobra.Command {
	sc := &SeriesCmd{pipeline: p, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "series <report-type>",
		Short: "Build the merged time series for a report type",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.outPath, "out", "", "Write the full series as CSV to this path")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	series, err := sc.pipeline.BuildSeries(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to build series for %s: %w", args[0], err)
	}

	if sc.outPath != "" {
		f, err := os.Create(sc.outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", sc.outPath, err)
		}
		defer f.Close()

		if err := export.WriteSeriesCSV(f, series); err != nil {
			return fmt.Errorf("failed to write series: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(series.Rows), sc.outPath)
		return nil
	}

	return sc.reporter.Handle(series)
}
