package newsportal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "   ", nil},
		{"Spaces", "hot  important hot", []string{"hot", "important"}},
		{"CommasWin", "machine learning, ai,,  hot ", []string{"ai", "hot", "machine learning"}},
		{"Quoted", `"new york" sports`, []string{"new york", "sports"}},
		{"QuotedWithCommas", `"a, b", c`, []string{"a, b", "c"}},
		{"UnclosedQuote", `"open tag`, []string{`"open`, "tag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTagNames(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
