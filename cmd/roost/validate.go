package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roost-chat/roost/pkg/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Check a command manifest for consistency",
	Long:  `Parses the YAML command manifest and reports declaration errors before they reach the platform.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "commands.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		cmds, err := manifest.Load(path)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest is valid: %d command(s)\n", len(cmds))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
