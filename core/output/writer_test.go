package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out", "shopify_import.csv")

	path, err := New("").Write(target, []byte("Handle\n"))
	require.NoError(t, err)
	assert.Equal(t, target, path)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Handle\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriter_RelativeToOutputDir(t *testing.T) {
	dir := t.TempDir()

	path, err := New(dir).Write("parsed_products.json", []byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "parsed_products.json"), path)
	assert.FileExists(t, path)
}

func TestWriter_Overwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	_, err := New("").Write(target, []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
