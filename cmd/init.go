package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter doclint.yaml config file",
	Long: `Create a doclint.yaml config file with the default thresholds and
pattern sets. Every key is optional; missing keys fall back to the same
defaults the file ships with.

Examples:
  doclint init          # Create doclint.yaml in the current directory
`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat("doclint.yaml"); err == nil {
			fmt.Println("❌ doclint.yaml already exists!")
			return
		}

		content := `# doclint configuration
# Every key is optional; missing keys fall back to the defaults below.

validation_thresholds:
  minimum_comment_length: 10
  required_column_coverage_percent: 80

comment_validation:
  # Count leading/trailing whitespace toward the comment length.
  count_whitespace: true

# Column names containing any of these substrings (case-insensitive)
# require documentation. Entries may also be mappings with a description:
#   - pattern: ssn
#     description: Social security numbers are always sensitive
critical_column_patterns:
  - id
  - email
  - ssn
  - password
  - key
  - uuid
  - token
  - secret
  - created
  - address
  - phone
  - name

placeholder_detection:
  patterns:
    - todo
    - fixme
    - tbd
    - xxx
    - hack
    - placeholder
    - temp
  case_sensitive: false
  # Only substring matching is supported today.
  match_mode: substring

rules:
  # An empty list runs every rule. See 'doclint rules' for the full set.
  enabled: []
`
		if err := os.WriteFile("doclint.yaml", []byte(content), 0644); err != nil {
			fmt.Println("❌ Error creating doclint.yaml:", err)
			return
		}
		fmt.Println("✅ Created doclint.yaml example file.")
		fmt.Println("📝 Edit doclint.yaml to tune thresholds and pattern sets")
		fmt.Println("🚀 Run 'doclint check' to validate your catalog documentation")
	},
}
