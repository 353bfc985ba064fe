package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standexlabs/standex/internal/engine"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = ""
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if errOut.Len() > 0 {
		t.Log(errOut.String())
	}
	return out.String(), err
}

func writeCatalog(t *testing.T, entries string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(entries), 0o644))
	return path
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "standex "+Version+"\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestListJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeCatalog(t, `
- key: ela
  source: ela.json
- key: eng_english_primary
  source: eng_english_primary.json
`)

	out, err := execute(t, "list", "--catalog", catalogPath, "--output", "json")
	require.NoError(t, err)

	var entries []struct {
		Key     string `json:"key"`
		Region  string `json:"region"`
		Uncoded bool   `json:"uncoded"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "ela", entries[0].Key)
	assert.Equal(t, "nys", entries[0].Region)
	assert.True(t, entries[1].Uncoded)
	assert.Equal(t, "england", entries[1].Region)
}

func TestExtractEndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())
	sources := t.TempDir()
	outputDir := t.TempDir()
	catalogPath := writeCatalog(t, "- key: ela\n  source: ela.json\n")

	// Fixture sources exercise the full pipeline without a PDF.
	require.NoError(t, os.WriteFile(filepath.Join(sources, "ela.json"), []byte(`[
  {"page": 1, "tokens": [
    {"text": "NY-3.W.2", "left": 40, "right": 100, "top": 120},
    {"text": "Write", "left": 110, "right": 150, "top": 120}
  ]}
]`), 0o644))

	out, err := execute(t, "extract",
		"--catalog", catalogPath,
		"--sources-dir", sources,
		"--output-dir", outputDir,
		"--output", "json",
	)
	require.NoError(t, err)

	var result engine.RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Subjects, 1)
	assert.Equal(t, engine.StatusWritten, result.Subjects[0].Status)
	assert.Equal(t, 1, result.Subjects[0].Records)

	raw, err := os.ReadFile(filepath.Join(outputDir, "nys", "ela_standards.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Grade 3"`)
	assert.Contains(t, string(raw), `"NY-3.W.2"`)
}

func TestCheckMissingSource(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeCatalog(t, "- key: ela\n  source: ela.json\n")

	_, err := execute(t, "check",
		"--catalog", catalogPath,
		"--sources-dir", t.TempDir(),
		"--output", "json",
	)
	assert.Error(t, err)
}
