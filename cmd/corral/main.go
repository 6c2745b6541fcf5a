package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corralmq/corral/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "corral",
	Short: "Corral - Declarative messaging-topology reconciler",
	Long: `Corral converges a messaging namespace to a declared topology of
queues, topics, subscriptions and filter rules: missing entities are
created, drifted ones updated, converged ones left alone.

Topologies are declared in YAML manifests (corral apply -f) or through
the Go builder API when embedding Corral in an application.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonOut, _ := cmd.Flags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(level),
			JSONOutput: jsonOut,
			Output:     os.Stderr,
		})
	},
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Corral version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs instead of console output")

	// Add subcommands
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(deleteCmd)
}
