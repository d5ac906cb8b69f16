package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexidiff"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lexidiff",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexidiff version %s\n", lexidiff.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
