package validator

import (
	"fmt"
	"strings"

	"doclint/catalog"
)

// Violation is one rule's negative verdict against one table.
type Violation struct {
	Table   string   `json:"table"`
	Detail  string   `json:"detail"`
	Columns []string `json:"columns,omitempty"`
}

// RuleResult aggregates one rule's verdicts across the whole batch.
type RuleResult struct {
	Rule              string      `json:"rule"`
	Severity          string      `json:"severity"`
	Violations        []Violation `json:"violations"`
	CompliancePercent float64     `json:"compliance_percent"`
}

// TableResult is the combined per-table assessment across every enabled
// rule. A table is compliant when every enabled rule passed.
type TableResult struct {
	Table        string   `json:"table"`
	Compliant    bool     `json:"compliant"`
	FailedChecks []string `json:"failed_checks,omitempty"`
}

// SkippedRecord notes an input record excluded from evaluation and why.
// The report never silently drops records.
type SkippedRecord struct {
	Table  string `json:"table"`
	Reason string `json:"reason"`
}

// Report is the aggregate output of one validation pass.
type Report struct {
	TablesEvaluated int             `json:"tables_evaluated"`
	Compliant       bool            `json:"compliant"`
	Rules           []RuleResult    `json:"rules"`
	Tables          []TableResult   `json:"tables"`
	Skipped         []SkippedRecord `json:"skipped,omitempty"`
}

// Run applies the enabled rules to every table and aggregates the
// verdicts. It is a pure function of its inputs: identical tables and
// config produce an identical report, and the caller's slices are never
// mutated. An empty enabled list runs every rule.
func Run(tables []catalog.TableInfo, cfg Config, enabled []string) (*Report, error) {
	rules, err := resolveRules(enabled)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	if err := cfg.Validate(names); err != nil {
		return nil, err
	}

	report := &Report{
		Compliant: true,
		Rules:     make([]RuleResult, len(rules)),
		Tables:    []TableResult{},
	}
	for i, r := range rules {
		report.Rules[i] = RuleResult{
			Rule:              r.Name(),
			Severity:          r.Severity(),
			Violations:        []Violation{},
			CompliancePercent: 100,
		}
	}

	valid := sanitize(tables, report)
	report.TablesEvaluated = len(valid)

	for _, table := range valid {
		result := TableResult{Table: table.FullName(), Compliant: true}
		for i, rule := range rules {
			verdict := rule.Evaluate(table, cfg)
			if verdict.Passed {
				continue
			}
			report.Rules[i].Violations = append(report.Rules[i].Violations, Violation{
				Table:   table.FullName(),
				Detail:  verdict.Detail,
				Columns: verdict.Columns,
			})
			result.Compliant = false
			result.FailedChecks = append(result.FailedChecks, rule.Name())
			report.Compliant = false
		}
		report.Tables = append(report.Tables, result)
	}

	for i := range report.Rules {
		report.Rules[i].CompliancePercent = compliancePercent(len(valid), len(report.Rules[i].Violations))
	}

	return report, nil
}

// resolveRules maps enabled names onto the registered rules, preserving
// the fixed registration order regardless of how the names were listed.
func resolveRules(enabled []string) ([]Rule, error) {
	all := AllRules()
	if len(enabled) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		if _, ok := RuleByName(name); !ok {
			return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, name)
		}
		wanted[name] = true
	}
	var rules []Rule
	for _, r := range all {
		if wanted[r.Name()] {
			rules = append(rules, r)
		}
	}
	return rules, nil
}

// sanitize drops malformed records and annotates the report with the
// reason for each exclusion. A table without a name is skipped entirely;
// a column without a name is excluded from its table's evaluation.
func sanitize(tables []catalog.TableInfo, report *Report) []catalog.TableInfo {
	var valid []catalog.TableInfo
	for i, table := range tables {
		if strings.TrimSpace(table.Name) == "" {
			report.Skipped = append(report.Skipped, SkippedRecord{
				Table:  fmt.Sprintf("record %d (%s)", i+1, table.FullName()),
				Reason: "table name is missing",
			})
			continue
		}
		dropped := 0
		for _, col := range table.Columns {
			if strings.TrimSpace(col.Name) == "" {
				dropped++
			}
		}
		if dropped > 0 {
			columns := make([]catalog.ColumnInfo, 0, len(table.Columns)-dropped)
			for _, col := range table.Columns {
				if strings.TrimSpace(col.Name) != "" {
					columns = append(columns, col)
				}
			}
			table.Columns = columns
			report.Skipped = append(report.Skipped, SkippedRecord{
				Table:  table.FullName(),
				Reason: fmt.Sprintf("%d column(s) without a name excluded from evaluation", dropped),
			})
		}
		valid = append(valid, table)
	}
	return valid
}

// compliancePercent treats an empty batch as fully compliant, the same
// vacuous pass a zero-column table gets from the coverage rule.
func compliancePercent(evaluated, violating int) float64 {
	if evaluated == 0 {
		return 100
	}
	return float64(evaluated-violating) / float64(evaluated) * 100
}
