// Package cmd — normalize command.
// Reads the raw catalog, strips HTML from description-like fields and
// writes the normalized catalog: load → normalize → render JSON → write.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/catalogpipe/core/catalog"
	"github.com/gaurav-prasanna/catalogpipe/core/extract"
	"github.com/gaurav-prasanna/catalogpipe/core/normalize"
	"github.com/gaurav-prasanna/catalogpipe/core/render"
	"github.com/spf13/cobra"
)

var (
	flagNormalizeInput  string
	flagNormalizeOutput string
	flagBodyFormat      string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Strip HTML from a raw catalog and extract structured fields",
	Long: `Normalize reads a JSON array of products, derives parsed_description from
the HTML description and extracts tech spec links, list items and blocks plus
features and extended info text from original_data.

Examples:
  catalogpipe normalize
  catalogpipe normalize --input data/products.json --output parsed_products.json
  catalogpipe normalize --body-format markdown`,
	Args: cobra.NoArgs,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&flagNormalizeInput, "input", "", "Raw catalog JSON (default from config: data/products.json)")
	normalizeCmd.Flags().StringVar(&flagNormalizeOutput, "output", "", "Normalized catalog JSON (default from config: parsed_products.json)")
	normalizeCmd.Flags().StringVar(&flagBodyFormat, "body-format", "", "parsed_description format: text or markdown (overrides config)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	inPath := pick(flagNormalizeInput, cfg.Normalize.Input)
	outPath := pick(flagNormalizeOutput, cfg.Normalize.Output)

	format, err := normalize.ParseBodyFormat(pick(flagBodyFormat, cfg.Normalize.BodyFormat))
	if err != nil {
		return err
	}

	log := logger.With().Str("stage", "normalize").Logger()

	products, err := catalog.Load(inPath)
	if reportMissingInput(cmd, err, inPath) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("path", inPath).Int("records", len(products)).Msg("catalog loaded")

	normalizer := normalize.New(extract.New(), format, log)
	normalized, err := normalizer.NormalizeAll(products)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	path, err := renderTo(render.NewJSONRenderer(), normalized, outPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("records", len(normalized)).Msg("normalized catalog written")
	fmt.Fprintf(cmd.OutOrStdout(), "Parsed data saved to %s\n", path)
	return nil
}
