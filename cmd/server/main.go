// Package main is the entry point for the combat service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quest-combat",
	Short: "Quest combat gRPC server",
	Long:  `Quest combat runs the turn-based combat engine: dice inventories, encounter sessions, party combos, and reward ledgers.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
