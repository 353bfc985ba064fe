package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/standexlabs/standex/pkg/standards"
)

// wordGapFactor bounds the horizontal gap, as a fraction of the font size,
// below which adjacent glyph runs belong to the same word.
const wordGapFactor = 0.3

// PDF extracts positioned words from PDF documents.
type PDF struct{}

// NewPDF returns a PDF word extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// Pages opens the document and returns one token stream per page. Glyph runs
// are merged into words, and vertical positions are flipped so Top grows
// downward as the rest of the pipeline expects.
func (e *PDF) Pages(path string) ([]standards.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var pages []standards.Page
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pages = append(pages, standards.Page{Number: i, Tokens: pageTokens(p)})
	}
	return pages, nil
}

// pageTokens groups the page's glyph runs into word tokens: runs on the same
// baseline are scanned left to right and merged while the gap between them
// stays under the word-gap threshold.
func pageTokens(p pdf.Page) []standards.Token {
	height := pageHeight(p)

	byLine := make(map[float64][]pdf.Text)
	for _, t := range p.Content().Text {
		byLine[t.Y] = append(byLine[t.Y], t)
	}

	ys := make([]float64, 0, len(byLine))
	for y := range byLine {
		ys = append(ys, y)
	}
	// PDF Y grows upward; descending Y is top-to-bottom document order.
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	var tokens []standards.Token
	for _, y := range ys {
		line := byLine[y]
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })

		open := false
		var lastEnd float64
		for _, t := range line {
			if strings.TrimSpace(t.S) == "" {
				open = false
				lastEnd = t.X + t.W
				continue
			}
			if open && t.X-lastEnd <= wordGapFactor*t.FontSize {
				cur := &tokens[len(tokens)-1]
				cur.Text += t.S
				cur.Right = t.X + t.W
			} else {
				tokens = append(tokens, standards.Token{
					Text:  t.S,
					Left:  t.X,
					Right: t.X + t.W,
					Top:   height - y,
				})
				open = true
			}
			lastEnd = t.X + t.W
		}
	}
	return tokens
}

// pageHeight reads the page's MediaBox height, walking up the page tree when
// the box is inherited from a parent node.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() >= 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return 0
}
