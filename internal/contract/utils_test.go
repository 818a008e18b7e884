package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{
			name:     "high at boundary",
			rate:     0.8,
			expected: HighValue,
		},
		{
			name:     "moderate at boundary",
			rate:     0.5,
			expected: ModerateValue,
		},
		{
			name:     "low below boundary",
			rate:     0.4999,
			expected: LowValue,
		},
		{
			name:     "full survival",
			rate:     1.0,
			expected: HighValue,
		},
		{
			name:     "zero",
			rate:     0.0,
			expected: LowValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.rate))
		})
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	// Colored output still carries the plain label text.
	assert.Contains(t, GetColorLabel(0.9), HighValue)
	assert.Contains(t, GetColorLabel(0.6), ModerateValue)
	assert.Contains(t, GetColorLabel(0.1), LowValue)
}

func TestSelectOutputFile(t *testing.T) {
	// Empty path falls back to stdout.
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file)

	// Non-empty path creates the file.
	path := filepath.Join(t.TempDir(), "out.csv")
	file, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	assert.NotEqual(t, os.Stdout, file)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".pairmetrics_cache.db"))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "yes", expected: true},
		{input: "TRUE", expected: true},
		{input: "1", expected: true},
		{input: "no", expected: false},
		{input: "False", expected: false},
		{input: "0", expected: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Args:     []string{"-C", "/repo", "rev-parse", "--verify", "nope^{commit}"},
		ExitCode: 128,
		Stderr:   "fatal: Needed a single revision\n",
	}
	msg := err.Error()
	assert.Contains(t, msg, "exited with code 128")
	assert.Contains(t, msg, "Needed a single revision")

	// Stdout is the fallback diagnostic when stderr is empty.
	err = &CommandError{Args: []string{"log"}, ExitCode: 1, Stdout: "some output"}
	assert.Contains(t, err.Error(), "some output")
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: "abc|oops", Reason: "expected 4 pipe-delimited fields"}
	msg := err.Error()
	assert.Contains(t, msg, `"abc|oops"`)
	assert.Contains(t, msg, "expected 4 pipe-delimited fields")
}
