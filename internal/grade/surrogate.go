package grade

import (
	"fmt"
	"strings"
)

// bandUnknown is the sentinel band for uncoded subjects whose key names no
// recognizable stage.
const bandUnknown = "KS?"

// Band derives the Key Stage band from an uncoded subject key's naming
// convention.
func Band(subjectKey string) string {
	switch {
	case strings.Contains(subjectKey, "_primary"):
		return "KS1-2"
	case strings.Contains(subjectKey, "_secondary"):
		return "KS3"
	case strings.Contains(subjectKey, "_ks4"), strings.Contains(subjectKey, "_gcse"):
		return "KS4"
	default:
		return bandUnknown
	}
}

// Tag derives the short subject tag from a subject key: the second
// underscore-separated segment, truncated to two characters and upper-cased.
func Tag(subjectKey string) string {
	segment := subjectKey
	if parts := strings.SplitN(subjectKey, "_", 3); len(parts) > 1 {
		segment = parts[1]
	}
	if len(segment) > 2 {
		segment = segment[:2]
	}
	return strings.ToUpper(segment)
}

// Fabricate composes a surrogate code for a row of an uncoded subject.
// fabricated is the number of rows already fabricated for the subject's band
// within the current document; the sequence number is fabricated+1, so codes
// are dense and strictly increasing per band. The band doubles as the grade
// label.
func Fabricate(subjectKey string, fabricated int) (code, band string) {
	band = Band(subjectKey)
	return fmt.Sprintf("%s-%s-%03d", band, Tag(subjectKey), fabricated+1), band
}
