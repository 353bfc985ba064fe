package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/standexlabs/standex/pkg/standards"
)

// Fixture reads pre-extracted token streams from JSON files: an array of
// pages, each {"page": n, "tokens": [{"text","left","right","top"}, ...]}.
// Used by tests and for documents whose words were extracted out of band.
type Fixture struct{}

// NewFixture returns a fixture-file extractor.
func NewFixture() *Fixture {
	return &Fixture{}
}

// Pages reads and decodes the fixture at path.
func (f *Fixture) Pages(path string) ([]standards.Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var pages []standards.Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return pages, nil
}
