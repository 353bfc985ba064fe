// Package engine runs the standards-extraction pipeline over a subject
// catalog: token streams are grouped into rows, codes classified, grades
// resolved, and one grade-indexed JSON artifact written per subject.
package engine

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/standexlabs/standex/internal/catalog"
	"github.com/standexlabs/standex/internal/extract"
)

// ErrMissingSource marks a catalog entry whose source document does not
// resolve to a readable file.
var ErrMissingSource = errors.New("source document not found")

// Engine orchestrates extraction for an ordered subject catalog.
type Engine struct {
	pager      extract.Pager
	subjects   []catalog.Subject
	sourcesDir string
	outputDir  string
	logger     *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// SourcesDir is the directory holding the source documents.
	SourcesDir string
	// OutputDir is the root of the output tree; artifacts are written to
	// <OutputDir>/<region>/<key>_standards.json.
	OutputDir string
	// Subjects is the ordered catalog to process (defaults to the built-in
	// catalog).
	Subjects []catalog.Subject
	// Pager extracts token streams from source documents (defaults to the
	// extension-dispatching extractor).
	Pager extract.Pager
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pager := cfg.Pager
	if pager == nil {
		pager = extract.NewAuto()
	}
	subjects := cfg.Subjects
	if len(subjects) == 0 {
		subjects = catalog.Default()
	}

	logger.Debug("initializing engine", "sources_dir", cfg.SourcesDir, "output_dir", cfg.OutputDir, "subjects", len(subjects))

	return &Engine{
		pager:      pager,
		subjects:   subjects,
		sourcesDir: cfg.SourcesDir,
		outputDir:  cfg.OutputDir,
		logger:     logger,
	}
}

// Subjects returns the engine's catalog in processing order.
func (e *Engine) Subjects() []catalog.Subject {
	return e.subjects
}

// SourcePath returns the path of the subject's source document.
func (e *Engine) SourcePath(s catalog.Subject) string {
	return filepath.Join(e.sourcesDir, s.Source)
}

// ArtifactPath returns the deterministic output path of the subject's
// artifact.
func (e *Engine) ArtifactPath(s catalog.Subject) string {
	return filepath.Join(e.outputDir, string(s.Region()), s.ArtifactName())
}
