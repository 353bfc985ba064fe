package grade

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBand(t *testing.T) {
	tests := []struct {
		subjectKey string
		want       string
	}{
		{"eng_english_primary", "KS1-2"},
		{"eng_mathematics_secondary", "KS3"},
		{"eng_science_ks4", "KS4"},
		{"eng_gcse_english_aqa", "KS4"},
		{"eng_citizenship", "KS?"},
		{"eng_reading_framework", "KS?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.subjectKey), tt.subjectKey)
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, "EN", Tag("eng_english_primary"))
	assert.Equal(t, "MA", Tag("eng_mathematics_ks4"))
	assert.Equal(t, "SC", Tag("eng_science_secondary"))
	assert.Equal(t, "PE", Tag("eng_pe_primary"))
	assert.Equal(t, "CI", Tag("eng_citizenship"))
}

func TestFabricate(t *testing.T) {
	// Three consecutive rows of a primary subject get dense 1-based codes.
	for i := 0; i < 3; i++ {
		code, band := Fabricate("eng_english_primary", i)
		assert.Equal(t, fmt.Sprintf("KS1-2-EN-%03d", i+1), code)
		assert.Equal(t, "KS1-2", band)
	}
}

func TestFabricateUnknownBand(t *testing.T) {
	code, band := Fabricate("eng_citizenship", 0)
	assert.Equal(t, "KS?-CI-001", code)
	assert.Equal(t, "KS?", band)
}
