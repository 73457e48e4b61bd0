package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time through -ldflags.
var Version = "0.2.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the worker service version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GPU Fleet Worker Management Service Version: %s\n", Version)
	},
}
