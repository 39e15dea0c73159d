package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{"strips embedded tags", []string{"<b>Salt</b> to taste"}, "Salt to taste"},
		{"joins without separator", []string{"2 cups ", "flour"}, "2 cups flour"},
		{"collapses newlines and tabs", []string{"\n\t 1 onion,\n  diced \t"}, "1 onion, diced"},
		{"keeps interior spaces", []string{"a pinch of salt"}, "a pinch of salt"},
		{"drops zero width characters", []string{"pep\u200bper"}, "pepper"},
		{"drops control characters", []string{"salt\x00\x07"}, "salt"},
		{"composes accents", []string{"jalapen\u0303o"}, "jalape\u00f1o"},
		{"empty input", nil, ""},
		{"whitespace only", []string{"  \n ", "\t"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.fragments))
		})
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, "2 hours", Dedupe([]string{"2 hours", "2 hours", "2 hours"}))
	assert.Equal(t, "1 hr 30 mins", Dedupe([]string{" 1 hr ", "\n", "30 mins", "1 hr"}))
	assert.Equal(t, "", Dedupe([]string{" ", ""}))
	assert.Equal(t, "", Dedupe(nil))
}
