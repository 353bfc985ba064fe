package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standexlabs/standex/pkg/standards"
)

func tok(text string, left, right, top float64) standards.Token {
	return standards.Token{Text: text, Left: left, Right: right, Top: top}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []standards.Token
		wantRows [][]string
	}{
		{
			name:     "empty page",
			tokens:   nil,
			wantRows: nil,
		},
		{
			name: "near-equal tops cluster into one row",
			tokens: []standards.Token{
				tok("a", 10, 20, 100.01),
				tok("b", 30, 40, 100.04),
			},
			wantRows: [][]string{{"a", "b"}},
		},
		{
			name: "tops rounding to different tenths split rows",
			tokens: []standards.Token{
				tok("a", 10, 20, 100.01),
				tok("b", 30, 40, 100.16),
			},
			wantRows: [][]string{{"a"}, {"b"}},
		},
		{
			name: "rows come out top to bottom",
			tokens: []standards.Token{
				tok("low", 10, 20, 300),
				tok("high", 10, 20, 100),
				tok("mid", 10, 20, 200),
			},
			wantRows: [][]string{{"high"}, {"mid"}, {"low"}},
		},
		{
			name: "extraction order preserved within a row",
			tokens: []standards.Token{
				tok("first", 10, 20, 50),
				tok("second", 30, 40, 50),
				tok("third", 50, 60, 50),
			},
			wantRows: [][]string{{"first", "second", "third"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.tokens)
			require.Len(t, got, len(tt.wantRows))
			for i, want := range tt.wantRows {
				texts := make([]string, 0, len(got[i].Tokens))
				for _, tk := range got[i].Tokens {
					texts = append(texts, tk.Text)
				}
				assert.Equal(t, want, texts)
			}
		})
	}
}

func TestFindCode(t *testing.T) {
	row := Row{Tokens: []standards.Token{
		tok("prose", 10, 40, 50),
		tok("CODE-1", 50, 90, 50),
		tok("CODE-2", 100, 140, 50),
	}}

	isCode := func(s string) bool { return s == "CODE-1" || s == "CODE-2" }

	code, ok := row.FindCode(isCode)
	require.True(t, ok)
	assert.Equal(t, "CODE-1", code.Text, "first matching token in row order wins")

	_, ok = row.FindCode(func(string) bool { return false })
	assert.False(t, ok)
}

func TestDescriptionAfter(t *testing.T) {
	code := tok("NY-3.W.2", 100, 150, 50)

	tests := []struct {
		name   string
		tokens []standards.Token
		want   string
	}{
		{
			name: "joins tokens right of the code",
			tokens: []standards.Token{
				tok("left", 10, 90, 50),
				code,
				tok("Write", 160, 200, 50),
				tok("informative", 210, 280, 50),
				tok("texts", 290, 330, 50),
			},
			want: "Write informative texts",
		},
		{
			name: "token at the code's right edge is excluded",
			tokens: []standards.Token{
				code,
				tok("touching", 150, 200, 50),
				tok("clear", 210, 250, 50),
			},
			want: "clear",
		},
		{
			name:   "code only row yields empty description",
			tokens: []standards.Token{code},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{Tokens: tt.tokens}
			assert.Equal(t, tt.want, row.DescriptionAfter(code))
		})
	}
}
