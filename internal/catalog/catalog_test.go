package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	subjects := Default()
	require.NotEmpty(t, subjects)

	// Processing order is fixed: NYS first.
	assert.Equal(t, "dance", subjects[0].Key)

	keys := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		assert.NotEmpty(t, s.Key)
		assert.NotEmpty(t, s.Source)
		assert.False(t, keys[s.Key], "duplicate key %s", s.Key)
		keys[s.Key] = true
	}

	assert.True(t, keys["mathematics"])
	assert.True(t, keys["eng_english_primary"])
}

func TestSubjectDerivedProperties(t *testing.T) {
	tests := []struct {
		key         string
		wantUncoded bool
		wantRegion  Region
	}{
		{"mathematics", false, RegionNYS},
		{"cdos", false, RegionNYS},
		{"eng_english_primary", true, RegionEngland},
		{"eng_citizenship", true, RegionEngland},
	}

	for _, tt := range tests {
		s := Subject{Key: tt.key, Source: tt.key + ".pdf"}
		assert.Equal(t, tt.wantUncoded, s.Uncoded(), tt.key)
		assert.Equal(t, tt.wantRegion, s.Region(), tt.key)
		assert.Equal(t, tt.key+"_standards.json", s.ArtifactName())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- key: ela
  source: ela_standards.pdf
- key: eng_english_primary
  source: eng_english_primary.pdf
`), 0o644))

	subjects, err := Load(path)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "ela", subjects[0].Key)
	assert.Equal(t, "eng_english_primary.pdf", subjects[1].Source)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("entry missing source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- key: ela\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "key and source are required")
	})
}

func TestSelect(t *testing.T) {
	subjects := []Subject{
		{Key: "a", Source: "a.pdf"},
		{Key: "b", Source: "b.pdf"},
		{Key: "c", Source: "c.pdf"},
	}

	t.Run("empty selection keeps everything", func(t *testing.T) {
		got, err := Select(subjects, nil)
		require.NoError(t, err)
		assert.Equal(t, subjects, got)
	})

	t.Run("selection preserves catalog order", func(t *testing.T) {
		got, err := Select(subjects, []string{"c", "a"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Key)
		assert.Equal(t, "c", got[1].Key)
	})

	t.Run("unknown key is an error", func(t *testing.T) {
		_, err := Select(subjects, []string{"a", "zz"})
		assert.ErrorContains(t, err, "unknown subject keys: zz")
	})
}
