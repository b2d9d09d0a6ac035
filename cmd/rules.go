package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"doclint/validator"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available documentation rules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("📋 Available rules:")
		for _, rule := range validator.AllRules() {
			severity := color.YellowString(rule.Severity())
			if rule.Severity() == validator.SeverityError {
				severity = color.RedString(rule.Severity())
			}
			fmt.Printf("  • %s [%s]: %s\n", rule.Name(), severity, rule.Description())
		}
		fmt.Println("\n💡 Enable a subset with 'doclint check --rules <name,...>' or the rules.enabled config key")
	},
}
