package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Acceptance label constants.
const (
	HighValue     = "High"     // High acceptance
	ModerateValue = "Moderate" // Moderate acceptance
	LowValue      = "Low"      // Low acceptance
)

// Color variables for console output.
var (
	HighColor     = color.New(color.FgGreen)             // healthy survival
	ModerateColor = color.New(color.FgYellow)            // standard caution
	LowColor      = color.New(color.FgRed, color.Bold)   // most of the added code vanished
)

// GetPlainLabel returns a plain text label indicating the acceptance level
// for a survival rate. This is the core logic used for CSV, JSON, and
// table printing.
func GetPlainLabel(rate float64) string {
	switch {
	case rate >= 0.8:
		return HighValue
	case rate >= 0.5:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(rate float64) string {
	text := GetPlainLabel(rate)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. An empty path falls back to os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program with a non-zero status.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for snapshot
// cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pairmetrics_cache.db"
	}
	return filepath.Join(homeDir, ".pairmetrics_cache.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
