// Package cmd — sheet command.
// Renders the normalized catalog as a PDF for review before import.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/catalogpipe/core/catalog"
	"github.com/gaurav-prasanna/catalogpipe/core/normalize"
	"github.com/gaurav-prasanna/catalogpipe/core/render"
	"github.com/spf13/cobra"
)

var (
	flagSheetInput  string
	flagSheetOutput string
	flagSheetTitle  string
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a PDF review sheet of the normalized catalog",
	Long: `Sheet lists every product of the normalized catalog with its handle, SKU,
price, description, features and technical specifications. Products that the
export would skip are marked.

Examples:
  catalogpipe sheet
  catalogpipe sheet --output review.pdf --title "Spring import"`,
	Args: cobra.NoArgs,
	RunE: runSheet,
}

func init() {
	rootCmd.AddCommand(sheetCmd)

	sheetCmd.Flags().StringVar(&flagSheetInput, "input", "", "Normalized catalog JSON (default from config: parsed_products.json)")
	sheetCmd.Flags().StringVar(&flagSheetOutput, "output", "", "PDF file (default from config: catalog_sheet.pdf)")
	sheetCmd.Flags().StringVar(&flagSheetTitle, "title", "", "Document title (overrides config)")
}

func runSheet(cmd *cobra.Command, args []string) error {
	inPath := pick(flagSheetInput, cfg.Sheet.Input)
	outPath := pick(flagSheetOutput, cfg.Sheet.Output)

	log := logger.With().Str("stage", "sheet").Logger()

	products, err := catalog.Load(inPath)
	if reportMissingInput(cmd, err, inPath) {
		return nil
	}
	if err != nil {
		return err
	}

	renderer := render.NewPDFRenderer(pick(flagSheetTitle, cfg.Sheet.Title))
	renderer.MarkdownBody = cfg.Normalize.BodyFormat == string(normalize.BodyMarkdown)
	path, err := renderTo(renderer, products, outPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("records", len(products)).Msg("review sheet written")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}
