// Package cmd implements the command-line interface for stax.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stax-cli/stax/playground"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

// playCmd launches the interactive playground, same as running stax bare.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive stack playground",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(playground.Run())
	},
}
