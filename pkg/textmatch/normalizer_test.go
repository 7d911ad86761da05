package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lower-cases and collapses whitespace",
			input:    "  Message   and Data\tRates\nMay Apply  ",
			expected: "message and data rates may apply",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n  ",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "reply stop to opt out",
			expected: "reply stop to opt out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello   World",
		"  MIXED\tCase \n text ",
		"already normalized text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
