package cmd

import (
	"fmt"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead
// of the full sharedSetup used by the scan command. This avoids Git repo
// validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the file snapshot cache (improves performance)",
	Long: `Manage the snapshot cache that speeds up repeated scans.

Pairmetrics caches file contents at resolved revisions to avoid re-reading
them from Git on every run. Resolved revisions are immutable, so entries
never go stale; repeated scans of the same repository get much faster.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  pairmetrics cache status

  # Clear cache to reclaim disk space
  pairmetrics cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshot data",
	Long: `Delete all cached snapshot data from the configured backend.

Cached snapshots are keyed by immutable revision hashes, so clearing is
only needed to reclaim space or after repository history was rewritten
(rebase, force push).

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  pairmetrics cache clear

  # Clear MySQL cache (set connection string via env variable)
  PAIRMETRICS_CACHE_BACKEND=mysql PAIRMETRICS_CACHE_DB_CONNECT="..." pairmetrics cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the snapshot cache.

Displays:
- Backend type and connection status
- Total number of cached snapshots
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  pairmetrics cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to initialize cache", err)
		}
		status, err := iocache.Store().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
