// Package main is the entry point for the todos server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "todos - an in-memory todo HTTP API",
	Long: `todos is a small HTTP service managing todo records in process
memory. It exposes CRUD operations over a single resource and maps
domain errors to JSON error responses.

State lives only for the lifetime of the process: there is no
persistence, authentication, or pagination.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.SetVersionTemplate("todos version {{.Version}}\n")
}
