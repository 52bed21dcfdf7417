package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Running the binary without a subcommand starts the server.
var rootCmd = &cobra.Command{
	Use:           "food-ordering",
	Short:         "Food ordering API server and admin tooling",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminCmd)

	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminSetPasswordCmd)
}
