// Package catalog loads product catalog documents from disk.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gaurav-prasanna/catalogpipe/core"
)

// ErrInputNotFound is returned when the catalog file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Load reads a JSON array of products. The whole document is decoded in
// memory before any product is returned.
func Load(path string) ([]core.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var products []core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	return products, nil
}
