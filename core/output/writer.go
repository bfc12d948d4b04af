// Package output handles writing rendered documents to disk.
// A document is written to a temporary file next to its destination and
// renamed into place, so a failed run never leaves a partial file behind.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered output to disk.
type Writer struct {
	// OutputDir is the base for relative paths. Empty means the working directory.
	OutputDir string
}

// New creates a Writer that resolves relative paths against outputDir.
func New(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// Write stores data at path, creating parent directories as needed, and
// returns the final path.
func (w *Writer) Write(path string, data []byte) (string, error) {
	if !filepath.IsAbs(path) && w.OutputDir != "" {
		path = filepath.Join(w.OutputDir, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("closing file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, nil
}
