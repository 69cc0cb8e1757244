package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment override, e.g. CHANSYNTH_LOGGING_LEVEL.
const EnvPrefix = "CHANSYNTH"

// Config represents the complete application configuration
type Config struct {
	Logging         LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Batch           BatchConfig   `yaml:"batch" envconfig:"BATCH"`
	Report          ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Providers       []string      `yaml:"providers" envconfig:"PROVIDERS" validate:"min=1,dive,required"`
	PreferencesFile string        `yaml:"preferences_file" envconfig:"PREFERENCES_FILE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr stdout file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file"`
}

// BatchConfig contains the directory scan and file naming convention
type BatchConfig struct {
	Directory     string `yaml:"directory" envconfig:"DIRECTORY" validate:"required"`
	DataSuffix    string `yaml:"data_suffix" envconfig:"DATA_SUFFIX" validate:"required"`
	CatalogSuffix string `yaml:"catalog_suffix" envconfig:"CATALOG_SUFFIX" validate:"required,nefield=DataSuffix"`
	OutputSuffix  string `yaml:"output_suffix" envconfig:"OUTPUT_SUFFIX" validate:"required,nefield=DataSuffix"`
	DataExt       string `yaml:"data_ext" envconfig:"DATA_EXT" validate:"required,startswith=."`
	OutputExt     string `yaml:"output_ext" envconfig:"OUTPUT_EXT" validate:"required,startswith=."`
}

// ReportConfig contains spreadsheet styling
type ReportConfig struct {
	SheetName         string `yaml:"sheet_name" envconfig:"SHEET_NAME" validate:"required,max=31"`
	HighlightProvider string `yaml:"highlight_provider" envconfig:"HIGHLIGHT_PROVIDER"`
	HighlightColor    string `yaml:"highlight_color" envconfig:"HIGHLIGHT_COLOR" validate:"omitempty,hexcolor"`
	HeaderToken       string `yaml:"header_token" envconfig:"HEADER_TOKEN"`
	PrintArea         bool   `yaml:"print_area" envconfig:"PRINT_AREA"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Batch: BatchConfig{
			Directory:     ".",
			DataSuffix:    "b",
			CatalogSuffix: "a",
			OutputSuffix:  "c",
			DataExt:       ".tsv",
			OutputExt:     ".xlsx",
		},
		Report: ReportConfig{
			SheetName:         "Sheet1",
			HighlightProvider: "voo",
			HighlightColor:    "#D60F8A",
			HeaderToken:       "Chaînes",
			PrintArea:         true,
		},
		Providers: []string{"voo", "orange", "telenet"},
	}
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chansynth", "config.yaml"), nil
}

// Load builds the configuration from defaults, the YAML file at path (skipped when it
// does not exist) and environment variables, in that order of precedence.
// An empty path uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("determine config path: %w", err)
		}
		path = p
	}

	if err := loadFromFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if cfg.PreferencesFile == "" {
		cfg.PreferencesFile = filepath.Join(filepath.Dir(path), "preferences.yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys absent from the file keep their value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
