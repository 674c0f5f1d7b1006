package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/fiscal-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/fiscal-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	pipeline  *pipeline.Pipeline
	sinks     []commands.Sink
	documents commands.DocumentSource
	analyzer  commands.TableAnalyzer
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI. Documents and Analyzer are
// optional; the ingest command is registered only when both are present.
type Options struct {
	Pipeline  *pipeline.Pipeline
	Sinks     []commands.Sink
	Documents commands.DocumentSource
	Analyzer  commands.TableAnalyzer
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		pipeline:  opts.Pipeline,
		sinks:     opts.Sinks,
		documents: opts.Documents,
		analyzer:  opts.Analyzer,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal",
		Short: "Quarterly fiscal report extraction tool",
	}

	cmd.AddCommand(commands.NewProcessCmd(cli.pipeline, cli.sinks))
	cmd.AddCommand(commands.NewSeriesCmd(cli.pipeline, cli.reporter))
	cmd.AddCommand(commands.NewReportsCmd(cli.pipeline))
	if cli.documents != nil && cli.analyzer != nil {
		cmd.AddCommand(commands.NewIngestCmd(cli.pipeline, cli.documents, cli.analyzer, cli.sinks))
	}

	return cmd
}
