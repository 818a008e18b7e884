package cmd

import (
	"fmt"
	"os"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/internal/dashboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dashboardSetup loads the minimal configuration needed to build a
// dashboard. No Git repository or cache backend is required; the command
// works purely from metrics CSVs.
func dashboardSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.DashboardCSV = viper.GetString("csv")
	cfg.DashboardOut = viper.GetString("out")
	if cfg.DashboardOut == "" {
		cfg.DashboardOut = contract.DashboardDefaultOut
	}
	cfg.Datasets = viper.GetStringSlice("dataset")

	return nil
}

// dashboardSetupWrapper wraps dashboardSetup to provide PreRunE.
func dashboardSetupWrapper(_ *cobra.Command, _ []string) error {
	return dashboardSetup()
}

// dashboardCmd renders metrics CSVs into a self-contained HTML page.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render metrics CSVs into a self-contained HTML dashboard.",
	Long: `Build an HTML dashboard from one or more acceptance metrics CSVs.

The page shows, per dataset:
- Survival rate per commit over time
- Immediate rework rate over time (gaps where rework was unobservable)
- Quality index per commit (survival x (1 - rework))
- Commit size vs survival scatter

The result is a single HTML file with no server or network dependencies.

Examples:
  # Visualize the default scan output
  pairmetrics dashboard

  # Visualize a specific CSV
  pairmetrics dashboard --csv sprint42.csv --out sprint42.html

  # Compare several runs on one page
  pairmetrics dashboard --dataset "Team A=a.csv" --dataset "Team B=b.csv"`,
	Args:    cobra.NoArgs,
	PreRunE: dashboardSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := dashboard.Build(cfg); err != nil {
			contract.LogFatal("Cannot build dashboard", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote dashboard to %s\n", cfg.DashboardOut)
	},
}
