// Command compassctl builds, queries, and serves a least-cost routing
// engine over a static road network.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openrouteengine/compass/internal/telemetry"
)

var (
	verbose       bool
	restoreLogger func()
)

var rootCmd = &cobra.Command{
	Use:   "compassctl",
	Short: "Least-cost road-network routing engine",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		restore, err := telemetry.Init(verbose)
		if err != nil {
			return err
		}
		restoreLogger = restore
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if restoreLogger != nil {
			restoreLogger()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")

	rootCmd.AddCommand(
		ingestCmd,
		queryCmd,
		serveCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
