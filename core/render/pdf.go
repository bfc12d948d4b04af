// Package render — PDF renderer.
// Produces a review sheet of the normalized catalog using gofpdf: a summary
// block followed by one section per product with its import-relevant fields.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/catalogpipe/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a catalog review sheet.
type PDFRenderer struct {
	Title string
	// MarkdownBody marks parsed descriptions as Markdown; inline formatting
	// is then stripped before printing. Text bodies print verbatim.
	MarkdownBody bool
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(title string) *PDFRenderer {
	if title == "" {
		title = "Catalog review"
	}
	return &PDFRenderer{Title: title}
}

// Render converts the catalog into PDF bytes.
func (r *PDFRenderer) Render(products []core.Product) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(r.Title, true)
	pdf.AddPage()
	// Core fonts are cp1252; catalog text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(r.Title), "", "L", false)
	pdf.Ln(4)

	renderSummary(pdf, tr, Summarize(products))

	for _, p := range products {
		renderProduct(pdf, tr, p, r.body(p))
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderSummary(pdf *gofpdf.Fpdf, tr func(string) string, rep Report) {
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Products: %d", rep.Total),
		fmt.Sprintf("Exported rows: %d", rep.Exported),
		fmt.Sprintf("Skipped (has options): %d", rep.SkippedOptions),
		fmt.Sprintf("With images: %d, with alt text: %d", rep.WithImages, rep.WithAltText),
		fmt.Sprintf("With categories: %d", rep.WithCategories),
	}
	if len(rep.DuplicateHandles) > 0 {
		lines = append(lines, "Duplicate handles: "+strings.Join(rep.DuplicateHandles, ", "))
	}
	if len(rep.DuplicateSKUs) > 0 {
		lines = append(lines, "Duplicate SKUs: "+strings.Join(rep.DuplicateSKUs, ", "))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	pdf.Ln(6)
}

func (r *PDFRenderer) body(p core.Product) string {
	if r.MarkdownBody {
		return cleanInlineMarkdown(p.ParsedDescription)
	}
	return strings.TrimSpace(p.ParsedDescription)
}

func renderProduct(pdf *gofpdf.Fpdf, tr func(string) string, p core.Product, body string) {
	title := p.Title
	if title == "" {
		title = p.Handle
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, tr(title), "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	meta := fmt.Sprintf("Handle: %s   SKU: %s   Price: %s", p.Handle, p.Code, p.Price.String())
	pdf.MultiCell(0, 5, tr(meta), "", "L", false)
	if p.HasOptions() {
		pdf.SetTextColor(180, 0, 0)
		pdf.MultiCell(0, 5, "skipped (has options)", "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	if body != "" {
		pdf.Ln(1)
		pdf.MultiCell(0, 5, tr(body), "", "L", false)
	}

	od := p.OriginalData
	if od == nil {
		pdf.Ln(3)
		return
	}
	if od.FeaturesText != "" {
		renderHeading(pdf, "Features")
		pdf.MultiCell(0, 5, tr(od.FeaturesText), "", "L", false)
	}
	if specs := ParseTechSpecs(od.TechSpecsDivs); len(specs) > 0 {
		renderHeading(pdf, "Technical specifications")
		for _, s := range specs {
			pdf.MultiCell(0, 5, tr("• "+s.Key+": "+s.Value), "", "L", false)
		}
	}
	if len(od.TechSpecsLinks) > 0 {
		renderHeading(pdf, "Datasheets")
		for _, link := range od.TechSpecsLinks {
			pdf.MultiCell(0, 5, tr(link), "", "L", false)
		}
	}
	pdf.Ln(3)
}

// renderHeading writes a small bold heading and restores the body font.
func renderHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
}

var (
	italicRegex     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// cleanInlineMarkdown strips inline Markdown formatting so descriptions
// normalized in markdown mode print as plain text.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
