package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roost",
	Short: "Roost is a webhook gateway for chat-platform bots",
	Long:  `Roost serves modal-based bot interactions over HTTP, with commands declared in a YAML manifest.`,
	// Errors are reported once, below, with the program name prefixed.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roost:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the roost config file")
}
