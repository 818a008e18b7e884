package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/iocache"
	"github.com/apkasten906/ai-pairing-metrics/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "pairmetrics",
	Short:              "Measure how much AI-assisted code actually sticks.",
	Long:               `Pairmetrics mines Git history to measure corrected acceptance: how many added lines survive to a reference revision, and how quickly they get reworked.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".pairmetrics") // Name of config file (without extension)
		viper.SetConfigType("yaml")         // We'll use YAML format
		viper.AddConfigPath(".")            // Look in the current directory
		viper.AddConfigPath("$HOME")        // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PAIRMETRICS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("window-days", contract.DefaultWindowDays)
	viper.SetDefault("author", "")
	viper.SetDefault("reference", contract.DefaultReference)
	viper.SetDefault("output", schema.CSVOut)
	viper.SetDefault("output-file", contract.DefaultOutputFile)
	viper.SetDefault("ignore-comments", false)
	viper.SetDefault("min-line-length", contract.DefaultMinLineLength)
	viper.SetDefault("immediate-window-minutes", contract.DefaultImmediateWindow)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("color", "yes")
	viper.SetDefault("csv", "")
	viper.SetDefault("out", contract.DashboardDefaultOut)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	client := contract.NewLocalGitClient()
	if err := contract.ProcessAndValidate(ctx, cfg, client, input); err != nil {
		return err
	}

	// 5. Initialize the snapshot cache with validated config
	if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".pairmetrics")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
