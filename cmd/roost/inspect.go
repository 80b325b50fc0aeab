package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roost-chat/roost/pkg/command"
	"github.com/roost-chat/roost/pkg/manifest"
)

// inspectCmd prints the registration payloads the platform would
// receive, which is handy for diffing against a live deployment.
var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest]",
	Short: "Print the registration payloads of a command manifest",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "commands.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		cmds, err := manifest.Load(path)
		if err != nil {
			fmt.Printf("Error loading manifest: %v\n", err)
			os.Exit(1)
		}

		payloads := make([]command.Payload, 0, len(cmds))
		for _, c := range cmds {
			payloads = append(payloads, c.ToPayload())
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payloads); err != nil {
			fmt.Printf("Error encoding payloads: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
