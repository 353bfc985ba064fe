package engine

import (
	"fmt"
	"os"

	"github.com/standexlabs/standex/internal/catalog"
	"github.com/standexlabs/standex/internal/classify"
	"github.com/standexlabs/standex/internal/dataset"
	"github.com/standexlabs/standex/internal/grade"
	"github.com/standexlabs/standex/internal/rows"
	"github.com/standexlabs/standex/pkg/standards"
)

// ExtractDocument runs the row-reconstruction pipeline over one subject's
// document and returns its grade-indexed dataset. Pages and rows are
// processed strictly in order; surrogate-code sequencing depends on it.
func (e *Engine) ExtractDocument(subject catalog.Subject) (*dataset.Dataset, error) {
	path := e.SourcePath(subject)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
	}

	pages, err := e.pager.Pages(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", path, err)
	}

	ds := dataset.New()
	for _, page := range pages {
		for _, row := range rows.Assemble(page.Tokens) {
			e.processRow(subject, row, ds)
		}
	}
	ds.Sort()
	return ds, nil
}

// processRow appends at most one record for the row: the classified code and
// everything right of it, or a fabricated surrogate when the subject's
// documents carry no codes. Rows without a code in coded documents are page
// furniture and are dropped silently.
func (e *Engine) processRow(subject catalog.Subject, row rows.Row, ds *dataset.Dataset) {
	code, ok := row.FindCode(classify.IsCode)
	if !ok {
		if !subject.Uncoded() {
			return
		}
		fabricated, label := grade.Fabricate(subject.Key, ds.Count(grade.Band(subject.Key)))
		ds.Append(label, standards.Record{
			Code:        fabricated,
			Description: row.DescriptionAfter(standards.Token{}),
		})
		return
	}

	fallback := grade.Fallback(subject.Key, code.Left)
	label := grade.Resolve(subject.Key, code.Text, fallback)
	ds.Append(label, standards.Record{
		Code:        code.Text,
		Description: row.DescriptionAfter(code),
	})
}
