package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/fiscal-atlas/pkg/runtime/terminal"
	"github.com/de-tools/fiscal-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/fiscal-atlas/pkg/services/config"
	"github.com/de-tools/fiscal-atlas/pkg/services/format"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/de-tools/fiscal-atlas/pkg/services/report"
	"github.com/de-tools/fiscal-atlas/pkg/store/csvfile"
	"github.com/de-tools/fiscal-atlas/pkg/store/documents"
	"github.com/de-tools/fiscal-atlas/pkg/store/duckdb"
	duckdbextract "github.com/de-tools/fiscal-atlas/pkg/store/duckdb/extract"
	"github.com/de-tools/fiscal-atlas/pkg/store/textract"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	settings := config.DefaultSettings()
	if path := os.Getenv("FISCAL_ATLAS_CONFIG"); path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}

	registry, err := buildRegistry(settings)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open DuckDB instance: %w", err)
	}
	defer db.Close()

	extractStore, err := duckdbextract.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create extract store: %w", err)
	}
	csvStore, err := csvfile.NewStore(settings.ProcessedDir)
	if err != nil {
		return fmt.Errorf("failed to create processed file store: %w", err)
	}

	var source pipeline.RowStore = extractStore
	if settings.Source == config.SourceCSV {
		source = csvStore
	}

	opts := terminal.Options{
		Pipeline: pipeline.New(registry, pipeline.NewStoreSource(source)),
		Sinks:    []commands.Sink{extractStore, csvStore},
		Output:   os.Stdout,
	}

	if settings.S3Bucket != "" {
		awsCfg, err := textract.LoadConfig(context.Background(), settings.AWSProfile)
		if err != nil {
			return err
		}
		docStore, err := documents.NewStore(*awsCfg, settings.S3Bucket)
		if err != nil {
			return fmt.Errorf("failed to create document store: %w", err)
		}
		opts.Documents = docStore
		opts.Analyzer = textract.NewClient(*awsCfg)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return terminal.NewCLI(opts).ExecuteContext(logger.WithContext(context.Background()))
}

func buildRegistry(settings *config.Settings) (report.Registry, error) {
	if settings.CatalogPath == "" {
		return report.NewDefaultRegistry(), nil
	}
	catalog, err := format.LoadCatalogFile(settings.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load formatting catalog: %w", err)
	}
	return report.NewRegistryWithCatalog(catalog), nil
}
