package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"doclint/catalog"
)

// Severity levels attached to violations. Each rule has a fixed severity.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Rule names accepted by Run and by the rules.enabled config list.
const (
	RuleTableHasComment     = "table_has_comment"
	RuleTableCommentLength  = "table_comment_length"
	RuleCriticalColumns     = "critical_columns_documented"
	RuleColumnCoverage      = "column_coverage"
	RulePlaceholderComments = "placeholder_comments"
)

// Verdict is one rule's judgement of one table. Detail and Columns are
// only set on failures.
type Verdict struct {
	Passed  bool
	Detail  string
	Columns []string
}

// Rule evaluates one table under one config. Implementations are
// stateless; neither rule order nor table order affects any verdict.
type Rule interface {
	Name() string
	Severity() string
	Description() string
	Evaluate(table catalog.TableInfo, cfg Config) Verdict
}

// AllRules returns the full rule set in its fixed reporting order.
func AllRules() []Rule {
	return []Rule{
		tableHasCommentRule{},
		commentLengthRule{},
		criticalColumnsRule{},
		columnCoverageRule{},
		placeholderRule{},
	}
}

// RuleByName returns the rule registered under name.
func RuleByName(name string) (Rule, bool) {
	for _, r := range AllRules() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

func pass() Verdict {
	return Verdict{Passed: true}
}

// hasText reports whether a comment is present and non-blank after
// trimming surrounding whitespace.
func hasText(comment *string) bool {
	return comment != nil && strings.TrimSpace(*comment) != ""
}

// tableHasCommentRule requires a non-blank table comment.
type tableHasCommentRule struct{}

func (tableHasCommentRule) Name() string     { return RuleTableHasComment }
func (tableHasCommentRule) Severity() string { return SeverityError }
func (tableHasCommentRule) Description() string {
	return "Table must carry a non-blank comment"
}

func (tableHasCommentRule) Evaluate(t catalog.TableInfo, _ Config) Verdict {
	if t.HasComment() {
		return pass()
	}
	if t.Comment == nil {
		return Verdict{Detail: "table has no comment"}
	}
	return Verdict{Detail: "table comment is blank"}
}

// commentLengthRule requires the table comment to reach the configured
// minimum length, counted in Unicode codepoints rather than bytes.
type commentLengthRule struct{}

func (commentLengthRule) Name() string     { return RuleTableCommentLength }
func (commentLengthRule) Severity() string { return SeverityWarning }
func (commentLengthRule) Description() string {
	return "Table comment must reach the configured minimum length"
}

func (commentLengthRule) Evaluate(t catalog.TableInfo, cfg Config) Verdict {
	// A missing comment counts as zero length; it only passes when the
	// threshold itself is zero.
	comment := ""
	if t.Comment != nil {
		comment = *t.Comment
	}
	if !cfg.CountWhitespace {
		comment = strings.TrimSpace(comment)
	}
	length := utf8.RuneCountInString(comment)
	if length < cfg.MinimumCommentLength {
		return Verdict{Detail: fmt.Sprintf("comment is %d characters, minimum is %d",
			length, cfg.MinimumCommentLength)}
	}
	return pass()
}

// criticalColumnsRule requires documentation on every column whose name
// contains a critical pattern. Matching is substring-based on the
// lower-cased name, so "created" also matches "created_at"; that
// over-matching is the documented behavior, not a bug to fix here.
type criticalColumnsRule struct{}

func (criticalColumnsRule) Name() string     { return RuleCriticalColumns }
func (criticalColumnsRule) Severity() string { return SeverityError }
func (criticalColumnsRule) Description() string {
	return "Columns matching critical patterns must be documented"
}

func (criticalColumnsRule) Evaluate(t catalog.TableInfo, cfg Config) Verdict {
	var undocumented []string
	for _, col := range t.Columns {
		nameLower := strings.ToLower(col.Name)
		critical := false
		for _, pattern := range cfg.CriticalColumnPatterns {
			if strings.Contains(nameLower, strings.ToLower(pattern)) {
				critical = true
				break
			}
		}
		if critical && !hasText(col.Comment) {
			undocumented = append(undocumented, col.Name)
		}
	}
	if len(undocumented) == 0 {
		return pass()
	}
	return Verdict{
		Detail: fmt.Sprintf("%d critical column(s) lack documentation: %s",
			len(undocumented), strings.Join(undocumented, ", ")),
		Columns: undocumented,
	}
}

// columnCoverageRule requires the documented fraction of columns to reach
// the configured threshold. The comparison is on the exact ratio; a table
// at exactly the threshold passes.
type columnCoverageRule struct{}

func (columnCoverageRule) Name() string     { return RuleColumnCoverage }
func (columnCoverageRule) Severity() string { return SeverityWarning }
func (columnCoverageRule) Description() string {
	return "Documented column percentage must reach the coverage threshold"
}

func (columnCoverageRule) Evaluate(t catalog.TableInfo, cfg Config) Verdict {
	// Zero columns is an explicit vacuous pass, not a division artifact.
	if len(t.Columns) == 0 {
		return pass()
	}
	documented := 0
	var undocumented []string
	for _, col := range t.Columns {
		if hasText(col.Comment) {
			documented++
		} else {
			undocumented = append(undocumented, col.Name)
		}
	}
	percentage := float64(documented) / float64(len(t.Columns)) * 100
	if percentage < cfg.ColumnCoverageThreshold {
		return Verdict{
			Detail: fmt.Sprintf("%.1f%% of columns documented (%d/%d), threshold is %g%%",
				percentage, documented, len(t.Columns), cfg.ColumnCoverageThreshold),
			Columns: undocumented,
		}
	}
	return pass()
}

// placeholderRule flags comments containing filler text like TODO or
// FIXME anywhere in the comment, including inside otherwise legitimate
// sentences. A missing comment is not a placeholder; absence is the
// concern of the comment-presence rules.
type placeholderRule struct{}

func (placeholderRule) Name() string     { return RulePlaceholderComments }
func (placeholderRule) Severity() string { return SeverityWarning }
func (placeholderRule) Description() string {
	return "Table comment must not contain placeholder text"
}

func (placeholderRule) Evaluate(t catalog.TableInfo, cfg Config) Verdict {
	if t.Comment == nil {
		return pass()
	}
	comment := *t.Comment
	if !cfg.PlaceholderCaseSensitive {
		comment = strings.ToLower(comment)
	}
	var matched []string
	for _, pattern := range cfg.PlaceholderPatterns {
		check := pattern
		if !cfg.PlaceholderCaseSensitive {
			check = strings.ToLower(pattern)
		}
		if strings.Contains(comment, check) {
			matched = append(matched, pattern)
		}
	}
	if len(matched) == 0 {
		return pass()
	}
	return Verdict{Detail: fmt.Sprintf("comment contains placeholder text: %s",
		strings.Join(matched, ", "))}
}
