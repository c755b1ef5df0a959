package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mdchat/internal/domain/ports"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestCatalog(t *testing.T) *Directory {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "Book.json", "{\n  \"type\": \"object\",\n  \"properties\": {\"title\": {\"type\": \"string\"}}\n}")
	writeFile(t, dir, "Author.yaml", "type: object\nproperties:\n  name:\n    type: string\n")
	writeFile(t, dir, "Broken.json", "{")
	writeFile(t, dir, "README.md", "# models")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.json"), 0755))
	return NewDirectory(dir)
}

func TestDirectory_Models(t *testing.T) {
	c := newTestCatalog(t)

	names, err := c.Models(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []string{"Author", "Book", "Broken"}, names)
}

func TestDirectory_Models_MissingDir(t *testing.T) {
	c := NewDirectory(filepath.Join(t.TempDir(), "nope"))

	_, err := c.Models(t.Context())

	require.Error(t, err)
}

func TestDirectory_Schema(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name     string
		model    string
		expected string
	}{
		{
			name:     "json file compacted",
			model:    "Book",
			expected: `{"type":"object","properties":{"title":{"type":"string"}}}`,
		},
		{
			name:     "yaml file converted",
			model:    "Author",
			expected: `{"type":"object","properties":{"name":{"type":"string"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := c.Schema(t.Context(), tt.model)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, schema)
		})
	}
}

func TestDirectory_Schema_Errors(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("unknown model", func(t *testing.T) {
		_, err := c.Schema(t.Context(), "Movie")
		assert.ErrorIs(t, err, ports.ErrModelNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := c.Schema(t.Context(), "Broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Broken.json")
	})

	t.Run("path traversal", func(t *testing.T) {
		_, err := c.Schema(t.Context(), "../etc/passwd")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid model name")
	})
}
