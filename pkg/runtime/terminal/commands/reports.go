package commands

import (
	"fmt"

	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/spf13/cobra"
)

type ReportsCmd struct {
	pipeline *pipeline.Pipeline
}

func NewReportsCmd(p *pipeline.Pipeline) *cobra.Command {
	rc := &ReportsCmd{pipeline: p}
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List registered report types",
		RunE:  rc.run,
	}

	return cmd
}

func (rc *ReportsCmd) run(cmd *cobra.Command, args []string) error {
	defs := rc.pipeline.ListReportTypes(cmd.Context())
	if len(defs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No report types registered")
		return nil
	}

	for _, def := range defs {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s (%d categories)\n", def.Name, def.Kind, len(def.Categories))
	}

	return nil
}
