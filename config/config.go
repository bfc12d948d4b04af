// Package config loads catalogpipe settings from defaults, an optional
// YAML file and CATALOGPIPE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration validation errors.
var (
	ErrInvalidBodyFormat = errors.New("normalize.body_format must be 'text' or 'markdown'")
	ErrInvalidLogFormat  = errors.New("logging.format must be 'console' or 'json'")
	ErrMissingPath       = errors.New("input and output paths are required")
)

// EnvPrefix prefixes environment overrides, e.g. CATALOGPIPE_EXPORT_OUTPUT.
const EnvPrefix = "CATALOGPIPE"

// Config holds the application configuration
type Config struct {
	Normalize NormalizeConfig `mapstructure:"normalize"`
	Export    StageConfig     `mapstructure:"export"`
	Sheet     SheetConfig     `mapstructure:"sheet"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// StageConfig holds the file handoff of one pipeline stage
type StageConfig struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// NormalizeConfig configures the HTML normalizer
type NormalizeConfig struct {
	StageConfig `mapstructure:",squash"`
	BodyFormat  string `mapstructure:"body_format"`
}

// SheetConfig configures the PDF review sheet
type SheetConfig struct {
	StageConfig `mapstructure:",squash"`
	Title       string `mapstructure:"title"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load loads the configuration. An explicit configPath must exist; without
// one, catalogpipe.yaml is looked up in . and ./config and is optional.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("catalogpipe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values and required paths.
func (c *Config) Validate() error {
	switch c.Normalize.BodyFormat {
	case "text", "markdown":
	default:
		return ErrInvalidBodyFormat
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return ErrInvalidLogFormat
	}

	for name, stage := range map[string]StageConfig{
		"normalize": c.Normalize.StageConfig,
		"export":    c.Export,
		"sheet":     c.Sheet.StageConfig,
	} {
		if stage.Input == "" || stage.Output == "" {
			return fmt.Errorf("%s: %w", name, ErrMissingPath)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Stage handoff files
	v.SetDefault("normalize.input", "data/products.json")
	v.SetDefault("normalize.output", "parsed_products.json")
	v.SetDefault("normalize.body_format", "text")

	v.SetDefault("export.input", "parsed_products.json")
	v.SetDefault("export.output", "shopify_import.csv")

	v.SetDefault("sheet.input", "parsed_products.json")
	v.SetDefault("sheet.output", "catalog_sheet.pdf")
	v.SetDefault("sheet.title", "Catalog review")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.no_color", false)
}
