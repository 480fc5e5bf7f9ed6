package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rentdiv",
	Short: "rentdiv computes an envy-free rent split for three housemates",
	Long: `rentdiv searches the rent simplex with Sperner-style triangle subdivision
until it finds prices at which three housemates want three different rooms.
Scenarios (housemates, rooms, rent, preference strategies) are YAML files;
run without arguments to solve the built-in demo scenario.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
