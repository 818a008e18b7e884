package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound4(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "zero stays zero",
			input:    0.0,
			expected: 0.0,
		},
		{
			name:     "already four decimals",
			input:    0.7000,
			expected: 0.7,
		},
		{
			name:     "rounds half up",
			input:    0.12345,
			expected: 0.1235,
		},
		{
			name:     "rounds down",
			input:    0.12344,
			expected: 0.1234,
		},
		{
			name:     "one stays one",
			input:    1.0,
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round4(tt.input), 1e-9)
		})
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		total    int
		expected float64
	}{
		{
			name:     "zero total is defined as zero",
			part:     0,
			total:    0,
			expected: 0.0,
		},
		{
			name:     "seven of ten",
			part:     7,
			total:    10,
			expected: 0.7,
		},
		{
			name:     "full survival",
			part:     3,
			total:    3,
			expected: 1.0,
		},
		{
			name:     "one third rounds to four decimals",
			part:     1,
			total:    3,
			expected: 0.3333,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Rate(tt.part, tt.total), 1e-9)
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.7000", FormatRate(0.7))
	assert.Equal(t, "0.0000", FormatRate(0))
	assert.Equal(t, "1.0000", FormatRate(1))
}

func TestQualityIndex(t *testing.T) {
	// Known rework scales survival down.
	assert.InDelta(t, 0.45, QualityIndex(0.9, 0.5, true), 1e-9)
	// Unknown rework is treated as zero, not skipped.
	assert.InDelta(t, 0.9, QualityIndex(0.9, 0.5, false), 1e-9)
}
