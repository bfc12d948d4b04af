// Package render — JSON renderer.
// Writes the normalized catalog as one indented JSON array.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/catalogpipe/core"
)

// JSONRenderer produces the normalized catalog document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render encodes products as an indented JSON array. HTML in descriptions
// is written verbatim rather than as \u003c escapes.
func (r *JSONRenderer) Render(products []core.Product) ([]byte, error) {
	if products == nil {
		products = []core.Product{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
