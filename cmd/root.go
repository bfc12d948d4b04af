// Package cmd implements the CLI commands for catalogpipe using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/catalogpipe/config"
	"github.com/gaurav-prasanna/catalogpipe/core"
	"github.com/gaurav-prasanna/catalogpipe/core/catalog"
	"github.com/gaurav-prasanna/catalogpipe/core/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	flagLogLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catalogpipe",
	Short: "catalogpipe — convert a product catalog export into a Shopify import CSV",
	Long: `catalogpipe is a two-stage batch pipeline that turns a JSON product
catalog export into a Shopify product import file.

Stages communicate through files:
  catalogpipe normalize   raw catalog  -> normalized catalog (HTML stripped)
  catalogpipe export      normalized   -> Shopify import CSV
  catalogpipe sheet       normalized   -> PDF review sheet`,
	SilenceUsage:      true,
	PersistentPreRunE: persistentPreRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./catalogpipe.yaml or ./config/catalogpipe.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// persistentPreRun loads configuration and builds the logger before each command.
func persistentPreRun(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	logger = initLogger(cmd.ErrOrStderr(), cfg.Logging)
	return nil
}

func initLogger(out io.Writer, lc config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if lc.Level != "" {
		if parsed, err := zerolog.ParseLevel(lc.Level); err == nil {
			level = parsed
		}
	}

	if lc.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: lc.NoColor}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// pick returns the flag value when set, else the configured one.
func pick(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}

// reportMissingInput prints the user-facing message for a missing input
// file. It returns true when err was such a failure; the command should
// then stop without writing output.
func reportMissingInput(cmd *cobra.Command, err error, path string) bool {
	if !errors.Is(err, catalog.ErrInputNotFound) {
		return false
	}
	logger.Error().Str("path", path).Msg("input file not found")
	fmt.Fprintf(cmd.OutOrStdout(), "Error: %s not found.\n", path)
	return true
}

// renderTo renders products and writes the document to outPath. A path
// without extension gets the renderer's.
func renderTo(renderer core.Renderer, products []core.Product, outPath string) (string, error) {
	data, err := renderer.Render(products)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if filepath.Ext(outPath) == "" {
		outPath += renderer.Extension()
	}
	return output.New("").Write(outPath, data)
}
