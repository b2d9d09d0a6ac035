package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doclint",
	Short: "Documentation compliance checker for database catalogs",
	Long: `doclint validates table and column documentation against a
configurable rule set: comment presence and length, critical-column
documentation, column coverage and placeholder detection.

Examples:

  doclint init
  doclint check
  doclint check --snapshot tables.yaml
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(checkCmd)
}
