package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/apkasten906/ai-pairing-metrics/schema"
)

// Default values for configuration.
const (
	DefaultWindowDays      = 30
	DefaultMinLineLength   = 3
	DefaultImmediateWindow = 90 // minutes
	DefaultReference       = "HEAD"
	DefaultOutputFile      = "ai_acceptance_metrics.csv"

	// SummaryFileName is fixed by the report contract; the dashboard and
	// downstream tooling look for it by name.
	SummaryFileName = "ai_acceptance_summary.txt"

	// DashboardDefaultOut is where the HTML dashboard lands by default.
	DashboardDefaultOut = "ai_acceptance_dashboard.html"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a scan or dashboard run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath        string        // Absolute path to the Git repository root
	WindowDays      int           // Lower bound of the commit time window
	Author          string        // Optional author filter, empty = no filter
	Reference       string        // Revision survival is measured against
	Output          schema.OutputMode
	OutputFile      string        // Per-commit report destination
	IgnoreComments  bool          // Drop blank/comment-only added lines
	MinLineLength   int           // Minimum trimmed length for a line to count
	ImmediateWindow time.Duration // Rework-detection window after each commit

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output

	// Dashboard inputs
	DashboardCSV string
	DashboardOut string
	Datasets     []string // Repeatable "Display Name=path/to.csv" entries
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from scanCmd flags ---
	WindowDays       int    `mapstructure:"window-days"`
	Author           string `mapstructure:"author"`
	Reference        string `mapstructure:"reference"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	IgnoreComments   bool   `mapstructure:"ignore-comments"`
	MinLineLength    int    `mapstructure:"min-line-length"`
	ImmediateMinutes int    `mapstructure:"immediate-window-minutes"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from dashboardCmd flags ---
	DashboardCSV string   `mapstructure:"csv"`
	DashboardOut string   `mapstructure:"out"`
	Datasets     []string `mapstructure:"dataset"`
}

// WindowStart returns the UTC instant windowDays before now; its unix
// seconds value is the --since bound passed to the log query.
func (c *Config) WindowStart(now time.Time) time.Time {
	return now.UTC().Add(-time.Duration(c.WindowDays) * 24 * time.Hour)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return resolveGitPath(ctx, cfg, client, input)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Author = strings.TrimSpace(input.Author)
	cfg.IgnoreComments = input.IgnoreComments
	cfg.DashboardCSV = input.DashboardCSV
	cfg.DashboardOut = input.DashboardOut
	cfg.Datasets = input.Datasets

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Window Validation ---
	if input.WindowDays <= 0 {
		return fmt.Errorf("window-days must be greater than 0 (received %d)", input.WindowDays)
	}
	cfg.WindowDays = input.WindowDays

	if input.ImmediateMinutes <= 0 {
		return fmt.Errorf("immediate-window-minutes must be greater than 0 (received %d)", input.ImmediateMinutes)
	}
	cfg.ImmediateWindow = time.Duration(input.ImmediateMinutes) * time.Minute

	if input.MinLineLength < 0 {
		return fmt.Errorf("min-line-length cannot be negative (received %d)", input.MinLineLength)
	}
	cfg.MinLineLength = input.MinLineLength

	// --- 2. Reference Validation ---
	cfg.Reference = strings.TrimSpace(input.Reference)
	if cfg.Reference == "" {
		cfg.Reference = DefaultReference
	}

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be csv, text, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}

	// --- 4. Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	return nil
}

// resolveGitPath resolves the Git repository root for the scan.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}

	gitRoot, err := client.GetRepoRoot(ctx, filepath.Clean(absSearchPath))
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot
	return nil
}
