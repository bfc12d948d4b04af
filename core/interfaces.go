// Package core defines the catalog pipeline types and stage interfaces.
// Each stage of the pipeline is a clean, testable interface.
package core

// TechSpecs holds the structured values extracted from a technical
// specifications fragment, each in document order.
type TechSpecs struct {
	Links     []string
	ListItems []string
	Blocks    []string
}

// Extractor pulls text and structure out of HTML fragments. Implementations
// must tolerate malformed markup.
type Extractor interface {
	// Text returns the concatenated text nodes of the fragment.
	Text(html string) (string, error)
	// TrimmedText returns the text nodes each trimmed and joined without a
	// separator; whitespace-only nodes contribute nothing.
	TrimmedText(html string) (string, error)
	TechSpecs(html string) (TechSpecs, error)
}

// Normalizer derives plain-text and structured fields for a product.
type Normalizer interface {
	Normalize(p Product) (Product, error)
}

// Renderer serializes a whole catalog into an output document.
type Renderer interface {
	Render(products []Product) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".csv", ".pdf").
	Extension() string
}
