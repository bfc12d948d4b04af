package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "products.json", `[
		{"handle": "a", "title": "A", "category_ids": ["1"]},
		{"handle": "b", "option_ids": ["9"]}
	]`)

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].Handle)
	assert.Equal(t, []string{"1"}, products[0].CategoryIDs)
	assert.True(t, products[1].HasOptions())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "bad.json", `[{"handle": "a",`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInputNotFound))
}

func TestLoad_NotAnArray(t *testing.T) {
	_, err := Load(writeFile(t, "obj.json", `{"handle": "a"}`))
	assert.Error(t, err)
}
