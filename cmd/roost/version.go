package main

import (
	"fmt"
	"runtime"

	"github.com/roost-chat/roost"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the roost version and build environment",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roost %s (%s, %s/%s)\n", roost.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
