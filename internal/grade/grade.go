// Package grade resolves the grade or level label of an extracted row.
//
// Resolution is layered: a grade token embedded in the code wins, then a
// per-subject constant, then the positional column map used by Arts-style
// table layouts. Subjects whose documents carry no codes at all get
// fabricated surrogate codes labeled with a Key Stage band.
package grade

import (
	"regexp"
	"strings"
)

// embeddedRule extracts the grade digits embedded in a subject's codes.
type embeddedRule struct {
	applies func(subjectKey string) bool
	pattern *regexp.Regexp
}

// Embedded-grade rules in priority order: math/literacy, science, social
// studies. The first capture group holds the grade digits.
var embeddedRules = []embeddedRule{
	{
		applies: func(k string) bool { return k == "mathematics" || k == "ela" },
		pattern: regexp.MustCompile(`NY-(\d+)`),
	},
	{
		applies: func(k string) bool { return k == "science" },
		pattern: regexp.MustCompile(`NYSSLS-(\d)`),
	},
	{
		applies: func(k string) bool { return strings.HasPrefix(k, "social_studies") },
		pattern: regexp.MustCompile(`SS\.([1-9])`),
	},
}

// Resolve returns the grade label for a coded row. If an embedded-grade rule
// applies to the subject and the code carries a grade token, that wins;
// otherwise fallback is returned unchanged. Resolve is total: absence of an
// embedded grade is the normal case, not an error.
func Resolve(subjectKey, code, fallback string) string {
	for _, r := range embeddedRules {
		if !r.applies(subjectKey) {
			continue
		}
		if m := r.pattern.FindStringSubmatch(code); m != nil {
			return "Grade " + m[1]
		}
	}
	return fallback
}

// constantGrade is the fixed fallback for subjects whose standards span all
// grades.
const constantGrade = "K-12"

// Fallback computes the pre-resolver grade guess for a coded row: the fixed
// constant for career development, otherwise the positional column map
// applied to the code's left edge.
func Fallback(subjectKey string, left float64) string {
	if subjectKey == "cdos" {
		return constantGrade
	}
	return ColumnGrade(left)
}
