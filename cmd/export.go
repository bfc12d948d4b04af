// Package cmd — export command.
// Maps the normalized catalog onto the Shopify product import columns.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/catalogpipe/core/catalog"
	"github.com/gaurav-prasanna/catalogpipe/core/render"
	"github.com/spf13/cobra"
)

var (
	flagExportInput  string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the Shopify import CSV from a normalized catalog",
	Long: `Export reads the normalized catalog and writes one CSV row per product.
Products with variant options are skipped.

Examples:
  catalogpipe export
  catalogpipe export --input parsed_products.json --output shopify_import.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagExportInput, "input", "", "Normalized catalog JSON (default from config: parsed_products.json)")
	exportCmd.Flags().StringVar(&flagExportOutput, "output", "", "Import CSV (default from config: shopify_import.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	inPath := pick(flagExportInput, cfg.Export.Input)
	outPath := pick(flagExportOutput, cfg.Export.Output)

	log := logger.With().Str("stage", "export").Logger()

	products, err := catalog.Load(inPath)
	if reportMissingInput(cmd, err, inPath) {
		return nil
	}
	if err != nil {
		return err
	}

	report := render.Summarize(products)
	for _, p := range products {
		if p.HasOptions() {
			log.Debug().Str("handle", p.Handle).Strs("option_ids", p.OptionIDs).Msg("skipping product with options")
		}
	}
	if len(report.DuplicateHandles) > 0 {
		log.Warn().Strs("handles", report.DuplicateHandles).Msg("duplicate handles")
	}
	if len(report.DuplicateSKUs) > 0 {
		log.Warn().Strs("skus", report.DuplicateSKUs).Msg("duplicate SKUs")
	}

	path, err := renderTo(render.NewCSVRenderer(), products, outPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Object("report", report).Msg("import file written")
	fmt.Fprintf(cmd.OutOrStdout(), "Shopify import CSV created: %s\n", path)
	return nil
}
