// Package cmd implements the grapnel command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of environment variables that override flags,
// e.g. GRAPNEL_TRIALS=4.
const envPrefix = "GRAPNEL"

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "grapnel",
	Short: "Graph traversal kernel benchmarks",
	Long: `grapnel runs the direction-optimizing BFS kernel against synthetic
graphs and reports per-trial timings alongside an independent
sequential verification of every resulting spanning forest.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}
