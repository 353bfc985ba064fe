// Package dataset accumulates extracted records keyed by grade label and
// serializes them as a stable, human-diffable JSON artifact.
package dataset

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/standexlabs/standex/pkg/standards"
)

// Dataset groups records by grade/level label. Label insertion order is
// remembered so serialization is deterministic across runs.
type Dataset struct {
	order  []string
	groups map[string][]standards.Record
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{groups: make(map[string][]standards.Record)}
}

// Append adds a record under the given grade label.
func (d *Dataset) Append(grade string, rec standards.Record) {
	if _, ok := d.groups[grade]; !ok {
		d.order = append(d.order, grade)
	}
	d.groups[grade] = append(d.groups[grade], rec)
}

// Count returns the number of records under a grade label.
func (d *Dataset) Count(grade string) int {
	return len(d.groups[grade])
}

// Grades returns the grade labels in insertion order.
func (d *Dataset) Grades() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Records returns the records under a grade label.
func (d *Dataset) Records(grade string) []standards.Record {
	return d.groups[grade]
}

// Len returns the total record count across all grades.
func (d *Dataset) Len() int {
	n := 0
	for _, recs := range d.groups {
		n += len(recs)
	}
	return n
}

// Sort orders each grade's records ascending by code using plain string
// comparison, not numeric-aware ordering: "NY-10..." sorts before "NY-2...".
// Downstream consumers depend on the existing order.
func (d *Dataset) Sort() {
	for _, recs := range d.groups {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Code < recs[j].Code })
	}
}

// MarshalJSON encodes the dataset as an object whose grade keys appear in
// insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grade := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grade)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.groups[grade])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
