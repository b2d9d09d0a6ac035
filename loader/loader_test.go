package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclint/loader"
	"doclint/validator"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFull(t *testing.T) {
	path := writeFile(t, "doclint.yaml", `
validation_thresholds:
  minimum_comment_length: 25
  required_column_coverage_percent: 90
comment_validation:
  count_whitespace: false
critical_column_patterns:
  - pattern: ssn
    description: Social security numbers are always sensitive
  - pattern: dob
placeholder_detection:
  patterns:
    - wip
    - draft
  case_sensitive: true
rules:
  enabled:
    - table_comment_length
    - placeholder_comments
`)

	cfg, enabled, err := loader.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.MinimumCommentLength)
	assert.Equal(t, 90.0, cfg.ColumnCoverageThreshold)
	assert.False(t, cfg.CountWhitespace)
	assert.Equal(t, []string{"ssn", "dob"}, cfg.CriticalColumnPatterns)
	assert.Equal(t, []string{"wip", "draft"}, cfg.PlaceholderPatterns)
	assert.True(t, cfg.PlaceholderCaseSensitive)
	assert.Equal(t, []string{"table_comment_length", "placeholder_comments"}, enabled)
}

func TestLoadConfigMissingKeysKeepDefaults(t *testing.T) {
	path := writeFile(t, "doclint.yaml", `
validation_thresholds:
  minimum_comment_length: 5
`)

	cfg, enabled, err := loader.LoadConfig(path)
	require.NoError(t, err)

	defaults := validator.DefaultConfig()
	assert.Equal(t, 5, cfg.MinimumCommentLength)
	assert.Equal(t, defaults.ColumnCoverageThreshold, cfg.ColumnCoverageThreshold)
	assert.Equal(t, defaults.CriticalColumnPatterns, cfg.CriticalColumnPatterns)
	assert.Equal(t, defaults.PlaceholderPatterns, cfg.PlaceholderPatterns)
	assert.Equal(t, defaults.PlaceholderMatchMode, cfg.PlaceholderMatchMode)
	assert.Empty(t, enabled)
}

func TestLoadConfigScalarPatternList(t *testing.T) {
	path := writeFile(t, "doclint.yaml", `
critical_column_patterns:
  - id
  - email
`)

	cfg, _, err := loader.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "email"}, cfg.CriticalColumnPatterns)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := loader.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, "doclint.yaml", "validation_thresholds: [broken")
	_, _, err := loader.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadTablesFromYAML(t *testing.T) {
	path := writeFile(t, "tables.yaml", `
tables:
  - catalog: main
    schema: sales
    name: orders
    comment: Customer order history
    columns:
      - name: id
        type: bigint
        comment: Unique identifier
      - name: status
        type: text
        comment: ""
      - name: notes
        type: text
  - catalog: main
    schema: sales
    name: empty_table
`)

	tables, err := loader.LoadTablesFromYAML(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	orders := tables[0]
	assert.Equal(t, "main.sales.orders", orders.FullName())
	require.NotNil(t, orders.Comment)
	assert.Equal(t, "Customer order history", *orders.Comment)
	require.Len(t, orders.Columns, 3)

	require.NotNil(t, orders.Columns[1].Comment)
	assert.Equal(t, "", *orders.Columns[1].Comment)
	// A comment key left out of the file stays nil, distinct from "".
	assert.Nil(t, orders.Columns[2].Comment)

	assert.Nil(t, tables[1].Comment)
	assert.Empty(t, tables[1].Columns)
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := loader.LoadTablesFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
