package main

import (
	"fmt"
	"os"

	"github.com/de-tools/fiscal-atlas/pkg/server"
	"github.com/de-tools/fiscal-atlas/pkg/services/config"
	"github.com/de-tools/fiscal-atlas/pkg/services/format"
	"github.com/de-tools/fiscal-atlas/pkg/services/pipeline"
	"github.com/de-tools/fiscal-atlas/pkg/services/report"
	"github.com/de-tools/fiscal-atlas/pkg/store/csvfile"
	"github.com/de-tools/fiscal-atlas/pkg/store/duckdb"
	duckdbextract "github.com/de-tools/fiscal-atlas/pkg/store/duckdb/extract"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Fiscal Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings := config.DefaultSettings()
	if cfgPath != "" {
		loaded, err := config.LoadSettings(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}

	registry := report.NewDefaultRegistry()
	if settings.CatalogPath != "" {
		catalog, err := format.LoadCatalogFile(settings.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load formatting catalog: %w", err)
		}
		registry = report.NewRegistryWithCatalog(catalog)
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

	var source pipeline.RowStore = extractStore
	if settings.Source == config.SourceCSV {
		csvStore, err := csvfile.NewStore(settings.ProcessedDir)
		if err != nil {
			return fmt.Errorf("failed to create processed file store: %w", err)
		}
		source = csvStore
	}

	for _, name := range registry.ListReportTypes() {
		logger.Info().Msgf("Registered report type: `%s`", name)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: settings.Addr,
		Dependencies: server.Dependencies{
			Reports: pipeline.New(registry, pipeline.NewStoreSource(source)),
		},
	})

	return api.Start()
}
