package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/standexlabs/standex/internal/catalog"
	"github.com/standexlabs/standex/internal/dataset"
)

// Status is the outcome of one catalog entry in a run.
type Status string

// Subject statuses.
const (
	StatusWritten Status = "written"
	StatusMissing Status = "missing"
	StatusFailed  Status = "failed"
)

// SubjectResult records the outcome of one catalog entry.
type SubjectResult struct {
	Key      string `json:"key"`
	Source   string `json:"source"`
	Status   Status `json:"status"`
	Artifact string `json:"artifact,omitempty"`
	Grades   int    `json:"grades,omitempty"`
	Records  int    `json:"records,omitempty"`
	Error    string `json:"error,omitempty"`
}

// RunResult summarizes one catalog run.
type RunResult struct {
	ID         string          `json:"id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Subjects   []SubjectResult `json:"subjects"`
}

// CountByStatus returns how many subjects finished with the given status.
func (r *RunResult) CountByStatus(s Status) int {
	n := 0
	for _, sub := range r.Subjects {
		if sub.Status == s {
			n++
		}
	}
	return n
}

// Run processes the catalog in order, one subject at a time, and writes one
// artifact per subject plus a run manifest. Failures are isolated per
// subject: a missing or unwritable document is reported and the rest of the
// catalog continues.
func (e *Engine) Run(selection []string) (*RunResult, error) {
	subjects := e.subjects
	if len(selection) > 0 {
		var err error
		subjects, err = catalog.Select(subjects, selection)
		if err != nil {
			return nil, err
		}
	}

	result := &RunResult{ID: uuid.NewString(), StartedAt: time.Now().UTC()}
	for _, subject := range subjects {
		result.Subjects = append(result.Subjects, e.runSubject(subject))
	}
	result.FinishedAt = time.Now().UTC()

	if err := e.writeManifest(result); err != nil {
		e.logger.Warn("failed to write run manifest", "error", err)
	}
	return result, nil
}

// runSubject extracts and writes one subject, converting errors into a
// per-subject status instead of aborting the run.
func (e *Engine) runSubject(subject catalog.Subject) SubjectResult {
	res := SubjectResult{Key: subject.Key, Source: subject.Source}

	e.logger.Debug("extracting subject", "key", subject.Key, "source", subject.Source)
	ds, err := e.ExtractDocument(subject)
	if errors.Is(err, ErrMissingSource) {
		e.logger.Warn("source document not found, skipping", "key", subject.Key, "path", e.SourcePath(subject))
		res.Status = StatusMissing
		res.Error = err.Error()
		return res
	}
	if err != nil {
		e.logger.Error("extraction failed", "key", subject.Key, "error", err)
		res.Status = StatusFailed
		res.Error = err.Error()
		return res
	}

	artifact, err := e.writeArtifact(subject, ds)
	if err != nil {
		e.logger.Error("failed to write artifact", "key", subject.Key, "error", err)
		res.Status = StatusFailed
		res.Error = err.Error()
		return res
	}

	res.Status = StatusWritten
	res.Artifact = artifact
	res.Grades = len(ds.Grades())
	res.Records = ds.Len()
	e.logger.Debug("wrote artifact", "key", subject.Key, "artifact", artifact, "records", res.Records)
	return res
}

// writeArtifact serializes the dataset to the subject's deterministic output
// path.
func (e *Engine) writeArtifact(subject catalog.Subject, ds *dataset.Dataset) (string, error) {
	path := e.ArtifactPath(subject)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}

// writeManifest records the run outcome next to the artifacts.
func (e *Engine) writeManifest(result *RunResult) error {
	if err := os.MkdirAll(e.outputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(e.outputDir, "manifest.json"), raw, 0o644)
}
