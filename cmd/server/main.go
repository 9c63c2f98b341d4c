// Package main is the entry point for the HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheet-api",
	Short: "Character Sheet API Server",
	Long:  `Sheet API serves D&D character sheets, dice rolls, and the soulbound token round trip for the browser frontend.`,
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
