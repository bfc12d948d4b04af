// Package normalize implements the Normalizer interface.
// It derives plain text from a product's HTML description and extracts
// structured fields from the rich-text blocks kept in original_data.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/catalogpipe/core"
	"github.com/rs/zerolog"
)

// BodyFormat selects how parsed_description is derived from description.
type BodyFormat string

const (
	// BodyText keeps only the visible text.
	BodyText BodyFormat = "text"
	// BodyMarkdown converts the description to Markdown.
	BodyMarkdown BodyFormat = "markdown"
)

var _ core.Normalizer = (*ProductNormalizer)(nil)

// ParseBodyFormat validates a configured body format. Empty means BodyText.
func ParseBodyFormat(s string) (BodyFormat, error) {
	switch BodyFormat(s) {
	case "", BodyText:
		return BodyText, nil
	case BodyMarkdown:
		return BodyMarkdown, nil
	default:
		return "", fmt.Errorf("unknown body format %q (want %q or %q)", s, BodyText, BodyMarkdown)
	}
}

// ProductNormalizer normalizes product records one at a time.
// Records are independent, so a single instance may be shared.
type ProductNormalizer struct {
	extractor core.Extractor
	format    BodyFormat
	log       zerolog.Logger
}

// New creates a ProductNormalizer.
func New(extractor core.Extractor, format BodyFormat, log zerolog.Logger) *ProductNormalizer {
	if format == "" {
		format = BodyText
	}
	return &ProductNormalizer{
		extractor: extractor,
		format:    format,
		log:       log,
	}
}

// Normalize returns a copy of p with parsed_description set and, when
// original_data is present, the tech spec, features and extended info
// fields derived. Markup problems never fail a record: a fragment that
// cannot be processed leaves its derived field empty and is logged.
func (n *ProductNormalizer) Normalize(p core.Product) (core.Product, error) {
	log := n.log.With().Str("code", p.Code).Str("handle", p.Handle).Logger()

	p.ParsedDescription = n.description(p.Description, log)

	if p.OriginalData.IsEmpty() {
		return p, nil
	}
	od := *p.OriginalData
	p.OriginalData = &od

	if od.TechSpecs != "" {
		specs, err := n.extractor.TechSpecs(od.TechSpecs)
		if err != nil {
			log.Warn().Err(err).Msg("tech_specs not extracted")
		} else {
			od.TechSpecsLinks = specs.Links
			od.TechSpecsList = specs.ListItems
			od.TechSpecsDivs = specs.Blocks
		}
	}

	if od.Features != "" {
		od.FeaturesText = n.trimmed(od.Features, "features", log)
	}

	if od.ExtendedInfo != "" {
		od.ExtendedInfoText = n.trimmed(od.ExtendedInfo, "extended_info", log)
	}

	return p, nil
}

// NormalizeAll normalizes every product, preserving order and length.
func (n *ProductNormalizer) NormalizeAll(products []core.Product) ([]core.Product, error) {
	out := make([]core.Product, 0, len(products))
	for i, p := range products {
		normalized, err := n.Normalize(p)
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, p.Code, err)
		}
		out = append(out, normalized)
	}
	return out, nil
}

func (n *ProductNormalizer) description(html string, log zerolog.Logger) string {
	if html == "" {
		return ""
	}

	if n.format == BodyMarkdown {
		markdown, err := htmltomarkdown.ConvertString(html)
		if err == nil {
			return markdown
		}
		log.Warn().Err(err).Msg("markdown conversion failed, falling back to text")
	}

	text, err := n.extractor.Text(html)
	if err != nil {
		log.Warn().Err(err).Msg("description not parsed")
		return ""
	}
	return text
}

func (n *ProductNormalizer) trimmed(html, field string, log zerolog.Logger) string {
	text, err := n.extractor.TrimmedText(html)
	if err != nil {
		log.Warn().Err(err).Str("field", field).Msg("text not extracted")
		return ""
	}
	return text
}
