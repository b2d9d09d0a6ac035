package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"doclint/validator"
)

type yamlConfig struct {
	ValidationThresholds   *yamlThresholds           `yaml:"validation_thresholds"`
	CommentValidation      *yamlCommentValidation    `yaml:"comment_validation"`
	CriticalColumnPatterns []yamlPattern             `yaml:"critical_column_patterns"`
	PlaceholderDetection   *yamlPlaceholderDetection `yaml:"placeholder_detection"`
	Rules                  *yamlRules                `yaml:"rules"`
}

type yamlThresholds struct {
	MinimumCommentLength          *int     `yaml:"minimum_comment_length"`
	RequiredColumnCoveragePercent *float64 `yaml:"required_column_coverage_percent"`
}

type yamlCommentValidation struct {
	CountWhitespace *bool `yaml:"count_whitespace"`
}

// yamlPattern accepts both a bare string and a mapping with a pattern key,
// so pattern lists can stay terse or carry a description per entry.
type yamlPattern struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
}

func (p *yamlPattern) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&p.Pattern)
	}
	type plain yamlPattern
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = yamlPattern(raw)
	return nil
}

type yamlPlaceholderDetection struct {
	Patterns      []string `yaml:"patterns"`
	CaseSensitive *bool    `yaml:"case_sensitive"`
	MatchMode     *string  `yaml:"match_mode"`
}

type yamlRules struct {
	Enabled []string `yaml:"enabled"`
}

// LoadConfig reads a doclint config file into a validator.Config plus the
// list of enabled rule names. Missing sections and keys keep their
// defaults; an empty enabled list means every rule runs.
func LoadConfig(filename string) (validator.Config, []string, error) {
	cfg := validator.DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, nil, fmt.Errorf("reading config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	if t := yc.ValidationThresholds; t != nil {
		if t.MinimumCommentLength != nil {
			cfg.MinimumCommentLength = *t.MinimumCommentLength
		}
		if t.RequiredColumnCoveragePercent != nil {
			cfg.ColumnCoverageThreshold = *t.RequiredColumnCoveragePercent
		}
	}
	if v := yc.CommentValidation; v != nil && v.CountWhitespace != nil {
		cfg.CountWhitespace = *v.CountWhitespace
	}
	if len(yc.CriticalColumnPatterns) > 0 {
		patterns := make([]string, 0, len(yc.CriticalColumnPatterns))
		for _, p := range yc.CriticalColumnPatterns {
			patterns = append(patterns, p.Pattern)
		}
		cfg.CriticalColumnPatterns = patterns
	}
	if d := yc.PlaceholderDetection; d != nil {
		if len(d.Patterns) > 0 {
			cfg.PlaceholderPatterns = d.Patterns
		}
		if d.CaseSensitive != nil {
			cfg.PlaceholderCaseSensitive = *d.CaseSensitive
		}
		if d.MatchMode != nil {
			cfg.PlaceholderMatchMode = *d.MatchMode
		}
	}

	var enabled []string
	if yc.Rules != nil {
		enabled = yc.Rules.Enabled
	}

	return cfg, enabled, nil
}
