// Package classify decides whether a text token is a standards code and, if
// so, which code family it belongs to.
package classify

import (
	"regexp"

	"github.com/standexlabs/standex/pkg/standards"
)

// rule pairs a code family with its anchored pattern.
type rule struct {
	family  standards.Family
	pattern *regexp.Regexp
}

// rules are evaluated in order; the first full match wins. The family
// alphabets are mutually exclusive, so the order only fixes determinism.
var rules = []rule{
	{standards.FamilyArts, regexp.MustCompile(`^[DMTVA]{2}:[A-Z][a-zA-Z]*\.\d+\.\w+$`)},
	{standards.FamilyCDOS, regexp.MustCompile(`^CDOS\s?\d(?:\.\d)?[a-z]?$`)},
	{standards.FamilyMathELA, regexp.MustCompile(`^NY-\d+[A-Z]?\.[A-Z]{1,4}\.[0-9A-Z]+$`)},
	{standards.FamilyScience, regexp.MustCompile(`^NYSSLS-[0-9A-Z-]+$`)},
	{standards.FamilySocialStudies, regexp.MustCompile(`^SS\.[0-9A-Z-]+$`)},
	{standards.FamilyWorldLanguages, regexp.MustCompile(`^WL\.[A-Z]{2,4}\.\d+$`)},
}

// Classify reports whether text is a standards code and which family
// recognized it. Matching is anchored: the entire token text must match a
// family pattern, so substrings and empty or whitespace-only text never
// classify.
func Classify(text string) (standards.Family, bool) {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.family, true
		}
	}
	return "", false
}

// IsCode reports whether text matches any code family.
func IsCode(text string) bool {
	_, ok := Classify(text)
	return ok
}
