package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Pipeline read-source backends. Extracts are always written to both; Source
// selects which one series builds read from.
const (
	SourceDuckDB = "duckdb"
	SourceCSV    = "csv"
)

// Settings is the tool configuration: where raw and processed filings live,
// where the DuckDB catalog sits, and how to reach the document bucket.
type Settings struct {
	RawDir       string `mapstructure:"raw_dir"`
	ProcessedDir string `mapstructure:"processed_dir"`
	DBPath       string `mapstructure:"db_path"`
	CatalogPath  string `mapstructure:"catalog_path"`
	Source       string `mapstructure:"source"`

	S3Bucket   string `mapstructure:"s3_bucket"`
	AWSProfile string `mapstructure:"aws_profile"`

	Addr string `mapstructure:"addr"`
}

// LoadSettings loads configuration from the specified settings file path.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("raw_dir", "data/raw")
	v.SetDefault("processed_dir", "data/processed")
	v.SetDefault("db_path", "fiscal-atlas.db")
	v.SetDefault("source", SourceDuckDB)
	v.SetDefault("addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.Source != SourceDuckDB && settings.Source != SourceCSV {
		return nil, fmt.Errorf("unknown pipeline source %q", settings.Source)
	}
	return &settings, nil
}

// DefaultSettings returns the settings used when no file is supplied.
func DefaultSettings() *Settings {
	return &Settings{
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		DBPath:       "fiscal-atlas.db",
		Source:       SourceDuckDB,
		Addr:         ":8080",
	}
}
