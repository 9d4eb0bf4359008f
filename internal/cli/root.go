package cli

import (
	"github.com/spf13/cobra"

	"github.com/cityops/dispatchplan/internal/scenario"
)

var (
	// Global flags
	scenarioPath string
	jsonOutput   bool
)

// rootCmd is the root command for dispatchplan.
var rootCmd = &cobra.Command{
	Use:     "dispatchplan",
	Version: "dev",
	Short:   "Emergency-response planning engine",
	Long: `dispatchplan turns a symbolic snapshot of an emergency-response
situation into a committed linear action sequence and a partially
ordered plan with causal justifications and contingent branch points.

Without --scenario, the built-in canonical scenario is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// loadSnapshot returns the snapshot selected by the --scenario flag,
// falling back to the canonical built-in scenario.
func loadSnapshot() (*scenario.Snapshot, error) {
	if scenarioPath == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(scenarioPath)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "", "Path to a YAML scenario file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit structured JSON instead of formatted text")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(popCmd)
	rootCmd.AddCommand(domainCmd)
}
