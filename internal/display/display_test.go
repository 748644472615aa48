package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short text unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long text truncated",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "newline replaced with space",
			input:    "hello\nworld",
			maxLen:   20,
			expected: "hello world",
		},
		{
			name:     "multibyte safe",
			input:    "héllo wörld",
			maxLen:   6,
			expected: "hél...",
		},
		{
			name:     "tiny width",
			input:    "hello",
			maxLen:   2,
			expected: "he",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.input, tt.maxLen))
		})
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "[#1] start", Subject("[#1] start\n\nbody text"))
	assert.Equal(t, "single", Subject("  single  "))
	assert.Equal(t, "", Subject(""))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  float64
		expected string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{70, "1h10m"},
		{125.6, "2h06m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 commit", Pluralize(1, "commit"))
	assert.Equal(t, "3 commits", Pluralize(3, "commit"))
	assert.Equal(t, "0 tickets", Pluralize(0, "ticket"))
}
