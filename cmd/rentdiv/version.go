package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release time.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rentdiv version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rentdiv", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
