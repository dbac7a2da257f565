// Command vexysvgo optimizes SVG documents from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes, per the external-interfaces contract: 0 success, 1
// optimization error for at least one input, 2 configuration error, 64
// invalid usage.
const (
	exitOK          = 0
	exitOptimizeErr = 1
	exitConfigErr   = 2
	exitUsageErr    = 64
)

func main() {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:   "vexysvgo [flags] [file ...]",
		Short: "Optimize SVG documents",
		Long: `vexysvgo parses, optimizes, and re-serializes SVG documents through a
configurable pipeline of plugins, SVGO-compatible at the plugin-name and
configuration level.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vexysvgo: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
