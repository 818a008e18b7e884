// Package cmd defines the command-line interface for pairmetrics.
package cmd

import (
	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.CSVOut), "Output format: csv or text or json or parquet")
	rootCmd.PersistentFlags().String("output-file", contract.DefaultOutputFile, "Path to write the per-commit report to")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Snapshot cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scanCmd to Viper
	scanCmd.Flags().IntP("window-days", "w", contract.DefaultWindowDays, "Scan commits from the last N days")
	scanCmd.Flags().StringP("author", "a", "", "Only scan commits whose author matches this pattern")
	scanCmd.Flags().String("reference", contract.DefaultReference, "Revision survival is measured against")
	scanCmd.Flags().Bool("ignore-comments", false, "Skip blank and comment-only added lines")
	scanCmd.Flags().Int("min-line-length", contract.DefaultMinLineLength, "Minimum trimmed length for an added line to count")
	scanCmd.Flags().Int("immediate-window-minutes", contract.DefaultImmediateWindow, "Window after each commit for immediate rework detection")
	if err := viper.BindPFlags(scanCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scan flags", err)
	}

	// Bind all flags of dashboardCmd to Viper
	dashboardCmd.Flags().String("csv", "", "Metrics CSV to visualize (defaults to the scan output file)")
	dashboardCmd.Flags().String("out", contract.DashboardDefaultOut, "Path to write the dashboard HTML to")
	dashboardCmd.Flags().StringArray("dataset", nil, "Named dataset as 'Display Name=path/to.csv' (repeatable)")
	if err := viper.BindPFlags(dashboardCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dashboard flags", err)
	}
}
