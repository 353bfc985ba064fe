// Package extract produces positioned token streams from source documents.
// It is the boundary to the document-parsing engine: the pipeline only ever
// sees the Pager interface.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/standexlabs/standex/pkg/standards"
)

// Pager yields the per-page token streams of one document.
type Pager interface {
	Pages(path string) ([]standards.Page, error)
}

// Auto dispatches to the fixture or PDF extractor by file extension.
type Auto struct {
	pdf     *PDF
	fixture *Fixture
}

// NewAuto returns the default extension-dispatching extractor.
func NewAuto() *Auto {
	return &Auto{pdf: NewPDF(), fixture: NewFixture()}
}

// Pages extracts the document at path. Files with a .json extension are read
// as pre-extracted token fixtures; everything else is treated as PDF.
func (a *Auto) Pages(path string) ([]standards.Page, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return a.fixture.Pages(path)
	}
	return a.pdf.Pages(path)
}
