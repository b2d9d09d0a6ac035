package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"doclint/catalog"
	"doclint/database"
	"doclint/introspect"
	"doclint/loader"
	"doclint/validator"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check catalog documentation compliance",
	Long: `Run the documentation rules against your catalog tables and report
every violation.

Tables come from one of two sources:
- Live introspection of a database schema (requires DATABASE_URL)
- A YAML snapshot file (--snapshot), fully offline and deterministic

Examples:
  doclint check                              # Check the public schema
  doclint check --db-schema sales            # Check a specific schema
  doclint check --snapshot tables.yaml       # Check a snapshot file
  doclint check --rules placeholder_comments # Run a single rule
  doclint check --format json                # Machine-readable output
`,
	Run: func(cmd *cobra.Command, args []string) {
		report, err := runCheck(cmd)
		if err != nil {
			fmt.Printf("❌ Compliance check failed: %v\n", err)
			os.Exit(1)
		}
		if !report.Compliant {
			os.Exit(1)
		}
	},
}

var (
	checkConfigFile string
	checkSnapshot   string
	checkSchema     string
	checkFormat     string
	checkRules      []string
	checkTimeout    time.Duration
)

func init() {
	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "doclint.yaml", "Config file with thresholds and pattern sets")
	checkCmd.Flags().StringVarP(&checkSnapshot, "snapshot", "s", "", "Table snapshot YAML file (skips database introspection)")
	checkCmd.Flags().StringVar(&checkSchema, "db-schema", "public", "Database schema to introspect")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format (text, json)")
	checkCmd.Flags().StringSliceVarP(&checkRules, "rules", "r", nil, "Rules to run (default: all, or the rules.enabled config key)")
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t", 30*time.Second, "Timeout for catalog introspection")
}

func runCheck(cmd *cobra.Command) (*validator.Report, error) {
	cfg, enabled, err := loadCheckConfig(cmd)
	if err != nil {
		return nil, err
	}
	if len(checkRules) > 0 {
		enabled = checkRules
	}

	tables, err := loadTables()
	if err != nil {
		return nil, err
	}

	report, err := validator.Run(tables, cfg, enabled)
	if err != nil {
		return nil, err
	}

	if checkFormat == "json" {
		if err := outputJSON(report); err != nil {
			return nil, err
		}
	} else {
		outputText(report)
	}

	return report, nil
}

// loadCheckConfig falls back to the built-in defaults when the default
// config file is simply absent. A --config path that does not exist is an
// error, not a silent fallback. The command is passed in rather than read
// from the package var so this never refers back to checkCmd while it is
// being initialized.
func loadCheckConfig(cmd *cobra.Command) (validator.Config, []string, error) {
	if _, err := os.Stat(checkConfigFile); os.IsNotExist(err) {
		if !cmd.Flags().Changed("config") {
			return validator.DefaultConfig(), nil, nil
		}
		return validator.Config{}, nil, fmt.Errorf("config file not found: %s", checkConfigFile)
	}
	return loader.LoadConfig(checkConfigFile)
}

func loadTables() ([]catalog.TableInfo, error) {
	if checkSnapshot != "" {
		return loader.LoadTablesFromYAML(checkSnapshot)
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	defer database.ClosePool()

	return introspect.DiscoverSchema(ctx, checkSchema)
}

func outputJSON(report *validator.Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func outputText(report *validator.Report) {
	if report.Compliant {
		color.Green("✅ Documentation compliance check passed!")
	} else {
		color.Red("❌ Documentation compliance check failed!")
	}

	for _, rule := range report.Rules {
		if len(rule.Violations) == 0 {
			continue
		}
		marker := "🟡"
		if rule.Severity == validator.SeverityError {
			marker = "🔴"
		}
		fmt.Printf("\n%s %s (%d violations, %.1f%% compliant):\n",
			marker, rule.Rule, len(rule.Violations), rule.CompliancePercent)
		for i, v := range rule.Violations {
			fmt.Printf("  %d. [%s]: %s\n", i+1, v.Table, v.Detail)
		}
	}

	if len(report.Skipped) > 0 {
		fmt.Printf("\n⚠️  Skipped (%d):\n", len(report.Skipped))
		for i, s := range report.Skipped {
			fmt.Printf("  %d. [%s]: %s\n", i+1, s.Table, s.Reason)
		}
	}

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Tables evaluated: %d\n", report.TablesEvaluated)
	for _, rule := range report.Rules {
		fmt.Printf("  • %s: %.1f%% compliant\n", rule.Rule, rule.CompliancePercent)
	}

	if report.Compliant {
		fmt.Printf("\n🎉 Every evaluated table passed the enabled rules!\n")
	} else {
		fmt.Printf("\n💡 Document the tables and columns listed above to reach compliance.\n")
	}
}
