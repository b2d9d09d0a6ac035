package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig marks configuration problems detected before any table
// is evaluated. The engine never produces a partial report on top of a bad
// config.
var ErrInvalidConfig = errors.New("invalid validation config")

// MatchModeSubstring is the only pattern match mode currently supported.
// Keeping the mode explicit in the config means a word-boundary mode can
// be added later without silently changing existing behavior.
const MatchModeSubstring = "substring"

// Config holds every tunable of the documentation rules. It is loaded once
// per run and passed by value; rules never mutate it.
type Config struct {
	// MinimumCommentLength is the least number of Unicode codepoints a
	// table comment must contain.
	MinimumCommentLength int

	// CountWhitespace controls whether leading/trailing whitespace counts
	// toward the comment length.
	CountWhitespace bool

	// CriticalColumnPatterns are lowercase substrings that mark a column
	// name as critical (id, email, ssn, ...). Matching is substring-based
	// and case-insensitive, so "created" also catches "created_at".
	CriticalColumnPatterns []string

	// ColumnCoverageThreshold is the required percentage of documented
	// columns, in [0,100]. Tables at exactly the threshold pass.
	ColumnCoverageThreshold float64

	// PlaceholderPatterns are substrings that mark a comment as filler
	// text (todo, fixme, ...).
	PlaceholderPatterns []string

	// PlaceholderCaseSensitive disables the default case folding of
	// placeholder matching.
	PlaceholderCaseSensitive bool

	// PlaceholderMatchMode selects how placeholder patterns match. Only
	// MatchModeSubstring is accepted today.
	PlaceholderMatchMode string
}

// DefaultConfig returns the configuration used when no config file (or an
// incomplete one) is supplied.
func DefaultConfig() Config {
	return Config{
		MinimumCommentLength: 10,
		CountWhitespace:      true,
		CriticalColumnPatterns: []string{
			"id", "email", "ssn", "password", "key", "uuid",
			"token", "secret", "created", "address", "phone", "name",
		},
		ColumnCoverageThreshold: 80,
		PlaceholderPatterns: []string{
			"todo", "fixme", "tbd", "xxx", "hack", "placeholder", "temp",
		},
		PlaceholderCaseSensitive: false,
		PlaceholderMatchMode:     MatchModeSubstring,
	}
}

// Validate checks the config against the rules that will run. An enabled
// rule with an empty or blank pattern set is a configuration error, not a
// vacuous pass.
func (c Config) Validate(enabled []string) error {
	if c.MinimumCommentLength < 0 {
		return fmt.Errorf("%w: minimum_comment_length must be >= 0, got %d",
			ErrInvalidConfig, c.MinimumCommentLength)
	}
	if c.ColumnCoverageThreshold < 0 || c.ColumnCoverageThreshold > 100 {
		return fmt.Errorf("%w: required_column_coverage_percent must be within [0,100], got %g",
			ErrInvalidConfig, c.ColumnCoverageThreshold)
	}
	if c.PlaceholderMatchMode != MatchModeSubstring {
		return fmt.Errorf("%w: unsupported placeholder match_mode %q (only %q is supported)",
			ErrInvalidConfig, c.PlaceholderMatchMode, MatchModeSubstring)
	}
	for _, p := range c.CriticalColumnPatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: critical_column_patterns contains a blank pattern", ErrInvalidConfig)
		}
	}
	for _, p := range c.PlaceholderPatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: placeholder patterns contains a blank pattern", ErrInvalidConfig)
		}
	}
	for _, name := range enabled {
		switch name {
		case RuleCriticalColumns:
			if len(c.CriticalColumnPatterns) == 0 {
				return fmt.Errorf("%w: rule %s is enabled but critical_column_patterns is empty",
					ErrInvalidConfig, name)
			}
		case RulePlaceholderComments:
			if len(c.PlaceholderPatterns) == 0 {
				return fmt.Errorf("%w: rule %s is enabled but placeholder patterns is empty",
					ErrInvalidConfig, name)
			}
		}
	}
	return nil
}
