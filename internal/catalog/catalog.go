// Package catalog defines the subject catalog: which source document each
// subject key maps to and the per-subject behavior derived from the key.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UncodedPrefix marks subject keys whose source documents carry no
// machine-readable codes; their rows get fabricated surrogate codes.
const UncodedPrefix = "eng_"

// Region is the output sub-area an artifact is written under.
type Region string

// Output sub-areas.
const (
	RegionNYS     Region = "nys"
	RegionEngland Region = "england"
)

// Subject describes one catalog entry: a short subject key and the source
// document it maps to. All other per-subject behavior is derived from the
// key.
type Subject struct {
	Key    string `yaml:"key" json:"key"`
	Source string `yaml:"source" json:"source"`
}

// Uncoded reports whether the subject's document carries no native codes.
func (s Subject) Uncoded() bool {
	return strings.HasPrefix(s.Key, UncodedPrefix)
}

// Region returns the output sub-area for the subject's artifact.
func (s Subject) Region() Region {
	if s.Uncoded() {
		return RegionEngland
	}
	return RegionNYS
}

// ArtifactName returns the subject's output filename.
func (s Subject) ArtifactName() string {
	return s.Key + "_standards.json"
}

// Load reads a catalog file: an ordered YAML list of {key, source} entries.
func Load(path string) ([]Subject, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var subjects []Subject
	if err := yaml.Unmarshal(raw, &subjects); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	for i, s := range subjects {
		if s.Key == "" || s.Source == "" {
			return nil, fmt.Errorf("catalog entry %d: key and source are required", i)
		}
	}
	return subjects, nil
}

// Select filters subjects by key, preserving catalog order. Unknown keys are
// an error so typos surface instead of silently extracting nothing.
func Select(subjects []Subject, keys []string) ([]Subject, error) {
	if len(keys) == 0 {
		return subjects, nil
	}
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	var out []Subject
	for _, s := range subjects {
		if wanted[s.Key] {
			out = append(out, s)
			delete(wanted, s.Key)
		}
	}
	if len(wanted) > 0 {
		var unknown []string
		for _, k := range keys {
			if wanted[k] {
				unknown = append(unknown, k)
				delete(wanted, k)
			}
		}
		return nil, fmt.Errorf("unknown subject keys: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
