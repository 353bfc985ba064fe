// Package standards defines the domain types shared across the extraction
// pipeline: positioned tokens from document pages, code families, and the
// (code, description) records grouped under grade labels.
package standards

// Token is one positioned unit of text extracted from a document page.
// Left and Right are the horizontal edges and Top the vertical position, in
// the source document's coordinate units with Top growing downward. Units
// are consistent within one document; Right > Left for well-formed tokens.
type Token struct {
	Text  string  `json:"text"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Top   float64 `json:"top"`
}

// Page is the token stream of a single document page, in the extraction
// engine's layout order.
type Page struct {
	Number int     `json:"page"`
	Tokens []Token `json:"tokens"`
}

// Record is one extracted standard.
type Record struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Family identifies which pattern family recognized a code.
type Family string

// Code families, one per classifier pattern.
const (
	FamilyArts           Family = "arts"
	FamilyCDOS           Family = "cdos"
	FamilyMathELA        Family = "math_ela"
	FamilyScience        Family = "science"
	FamilySocialStudies  Family = "social_studies"
	FamilyWorldLanguages Family = "world_languages"

	// FamilySurrogate marks codes fabricated for documents that carry no
	// native machine-readable codes.
	FamilySurrogate Family = "surrogate"
)
