package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
		text     string
	}{
		{
			name:     "punctuation and case",
			raw:      "First bus, SVC-10!",
			expected: []string{"first", "bus", "svc", "10"},
			text:     "first bus svc 10",
		},
		{
			name:     "extra whitespace",
			raw:      "  avg   load\tsvc 190  ",
			expected: []string{"avg", "load", "svc", "190"},
			text:     "avg load svc 190",
		},
		{
			name:     "mixed alphanumerics stay together",
			raw:      "bus A1 on Sunday/PH",
			expected: []string{"bus", "a1", "on", "sunday", "ph"},
			text:     "bus a1 on sunday ph",
		},
		{
			name: "empty",
			raw:  "",
			text: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.raw)
			assert.Equal(t, tc.expected, tokens.Words)
			assert.Equal(t, tc.text, tokens.Text)
		})
	}
}

func TestTokensContains(t *testing.T) {
	tokens := Tokenize("Max loading for service 10")
	assert.True(t, tokens.Contains("max loading"))
	assert.True(t, tokens.Contains("load"))
	assert.False(t, tokens.Contains("min loading"))
	assert.False(t, tokens.Contains(""))
}
