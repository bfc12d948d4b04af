// Package render provides output renderers for the catalog pipeline.
// This file implements the Shopify product import CSV.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/catalogpipe/core"
)

// GramsPerPound converts source weights (pounds) to Shopify grams.
const GramsPerPound = 453.592

// Header is the fixed column set of the import file, in order.
var Header = []string{
	"Handle", "Title", "Body (HTML)", "Vendor", "Type", "Tags", "Published",
	"Option1 Name", "Option1 Value", "Option2 Name", "Option2 Value", "Option3 Name", "Option3 Value",
	"Variant SKU", "Variant Grams", "Variant Inventory Tracker", "Variant Inventory Qty", "Variant Inventory Policy",
	"Variant Fulfillment Service", "Variant Price", "Variant Compare At Price", "Variant Requires Shipping",
	"Variant Taxable", "Variant Barcode", "Image Src", "Image Position", "Image Alt Text",
	"Metafield: custom.features [multi_line_text_field]",
	"Metafield: custom.technical_specifications [json]",
	"Metafield: custom.datasheet [list.file_reference]",
	"Metafield: custom.extended_information [multi_line_text_field]",
}

// CSVRenderer writes normalized products as a Shopify import CSV.
// Products with variant options are skipped.
type CSVRenderer struct{}

var (
	_ core.Renderer = (*CSVRenderer)(nil)
	_ core.Renderer = (*JSONRenderer)(nil)
	_ core.Renderer = (*PDFRenderer)(nil)
)

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes the header followed by one row per product without options,
// in input order.
func (r *CSVRenderer) Render(products []core.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, p := range products {
		if p.HasOptions() {
			continue
		}
		row, err := Row(p)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.Handle, err)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing product %s: %w", p.Handle, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}

// Row maps one product onto the Header columns. Option columns are always
// empty: callers skip products that have options.
func Row(p core.Product) ([]string, error) {
	od := p.OriginalData
	if od == nil {
		od = &core.OriginalData{}
	}

	techSpecs, err := TechSpecsJSON(od.TechSpecsDivs)
	if err != nil {
		return nil, err
	}

	// An absent price exports as 0, an explicit null as an empty cell.
	price := "0"
	if p.Price.IsSet() {
		price = p.Price.String()
	}

	return []string{
		p.Handle,
		p.Title,
		p.ParsedDescription,
		p.Vendor,
		"", // Type
		strings.Join(p.CategoryIDs, ","),
		"true",
		"", "", "", "", "", "",
		p.Code,
		strconv.FormatFloat(p.Weight*GramsPerPound, 'f', -1, 64),
		"shopify",
		strconv.Itoa(p.Inventory),
		"deny",
		"manual",
		price,
		p.CompareAtPrice.String(),
		"true",
		"true",
		p.Barcode,
		p.ImageURL,
		"1",
		p.ImageAlt,
		od.FeaturesText,
		techSpecs,
		strings.Join(od.TechSpecsLinks, ","),
		od.ExtendedInfoText,
	}, nil
}

// Spec is one "key: value" pair from the technical specifications.
type Spec struct {
	Key   string
	Value string
}

// ParseTechSpecs splits each block on its first colon and trims both sides.
// Blocks without a colon are dropped. A repeated key keeps its first
// position and takes the last value.
func ParseTechSpecs(blocks []string) []Spec {
	var specs []Spec
	index := make(map[string]int)
	for _, block := range blocks {
		key, value, ok := strings.Cut(block, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if i, seen := index[key]; seen {
			specs[i].Value = value
			continue
		}
		index[key] = len(specs)
		specs = append(specs, Spec{Key: key, Value: value})
	}
	return specs
}

// TechSpecsJSON serializes ParseTechSpecs(blocks) as a JSON object, keeping
// key order. It returns "" when no block qualifies.
func TechSpecsJSON(blocks []string) (string, error) {
	specs := ParseTechSpecs(blocks)
	if len(specs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range specs {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, s.Key); err != nil {
			return "", err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, s.Value); err != nil {
			return "", err
		}
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding %q: %w", s, err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
