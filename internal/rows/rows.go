// Package rows reconstructs logical table rows from a page's flat token
// stream by clustering tokens with near-equal vertical position.
package rows

import (
	"math"
	"sort"
	"strings"

	"github.com/standexlabs/standex/pkg/standards"
)

// Row is the ordered set of tokens sharing one vertical position.
type Row struct {
	Tokens []standards.Token
}

// rowKey buckets a vertical position: tokens whose top rounds to the same
// tenth of a unit belong to the same row.
func rowKey(top float64) float64 {
	return math.Round(top*10) / 10
}

// Assemble clusters a page's tokens into rows ordered top to bottom. The
// sort is stable so extraction order is preserved within a row; description
// assembly relies on that order reflecting left-to-right layout.
func Assemble(tokens []standards.Token) []Row {
	sorted := make([]standards.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Top < sorted[j].Top })

	var out []Row
	for _, tok := range sorted {
		key := rowKey(tok.Top)
		if n := len(out); n > 0 && rowKey(out[n-1].Tokens[0].Top) == key {
			out[n-1].Tokens = append(out[n-1].Tokens, tok)
			continue
		}
		out = append(out, Row{Tokens: []standards.Token{tok}})
	}
	return out
}

// FindCode returns the first token in row order satisfying match.
func (r Row) FindCode(match func(text string) bool) (standards.Token, bool) {
	for _, tok := range r.Tokens {
		if match(tok.Text) {
			return tok, true
		}
	}
	return standards.Token{}, false
}

// DescriptionAfter joins the text of every token strictly right of the code
// token's right edge, in row order, trimmed of surrounding whitespace.
// Tokens at or left of the code's right edge are excluded, the code token
// included.
func (r Row) DescriptionAfter(code standards.Token) string {
	var parts []string
	for _, tok := range r.Tokens {
		if tok.Left > code.Right {
			parts = append(parts, tok.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
