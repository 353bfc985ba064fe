package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturePages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ela.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"page": 1, "tokens": [
    {"text": "NY-3.W.2", "left": 40, "right": 100, "top": 120.5},
    {"text": "Write", "left": 110, "right": 150, "top": 120.5}
  ]},
  {"page": 2, "tokens": []}
]`), 0o644))

	pages, err := NewFixture().Pages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	require.Len(t, pages[0].Tokens, 2)
	assert.Equal(t, "NY-3.W.2", pages[0].Tokens[0].Text)
	assert.Equal(t, 100.0, pages[0].Tokens[0].Right)
	assert.Empty(t, pages[1].Tokens)
}

func TestFixturePagesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFixture().Pages(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := NewFixture().Pages(path)
		assert.ErrorContains(t, err, "failed to parse fixture")
	})
}

func TestAutoDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.JSON")
	require.NoError(t, os.WriteFile(path, []byte(`[{"page": 1, "tokens": []}]`), 0o644))

	// Case-insensitive extension match routes to the fixture reader.
	pages, err := NewAuto().Pages(path)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}
