package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclint/validator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := validator.DefaultConfig()

	assert.Equal(t, 10, cfg.MinimumCommentLength)
	assert.True(t, cfg.CountWhitespace)
	assert.Equal(t, 80.0, cfg.ColumnCoverageThreshold)
	assert.Contains(t, cfg.CriticalColumnPatterns, "ssn")
	assert.Contains(t, cfg.PlaceholderPatterns, "todo")
	assert.False(t, cfg.PlaceholderCaseSensitive)
	assert.Equal(t, validator.MatchModeSubstring, cfg.PlaceholderMatchMode)

	require.NoError(t, cfg.Validate(nil))
}

func TestConfigValidateRanges(t *testing.T) {
	t.Run("negative minimum length", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.MinimumCommentLength = -1
		assert.ErrorIs(t, cfg.Validate(nil), validator.ErrInvalidConfig)
	})

	t.Run("threshold above 100", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.ColumnCoverageThreshold = 100.5
		assert.ErrorIs(t, cfg.Validate(nil), validator.ErrInvalidConfig)
	})

	t.Run("negative threshold", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.ColumnCoverageThreshold = -0.1
		assert.ErrorIs(t, cfg.Validate(nil), validator.ErrInvalidConfig)
	})

	t.Run("boundary values are accepted", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.MinimumCommentLength = 0
		cfg.ColumnCoverageThreshold = 0
		assert.NoError(t, cfg.Validate(nil))
		cfg.ColumnCoverageThreshold = 100
		assert.NoError(t, cfg.Validate(nil))
	})
}

func TestConfigValidatePatternSets(t *testing.T) {
	t.Run("empty critical patterns only matter when the rule runs", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.CriticalColumnPatterns = nil
		assert.NoError(t, cfg.Validate([]string{validator.RuleTableHasComment}))
		assert.ErrorIs(t, cfg.Validate([]string{validator.RuleCriticalColumns}), validator.ErrInvalidConfig)
	})

	t.Run("empty placeholder patterns only matter when the rule runs", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.PlaceholderPatterns = nil
		assert.NoError(t, cfg.Validate([]string{validator.RuleColumnCoverage}))
		assert.ErrorIs(t, cfg.Validate([]string{validator.RulePlaceholderComments}), validator.ErrInvalidConfig)
	})

	t.Run("blank pattern entries are rejected", func(t *testing.T) {
		cfg := validator.DefaultConfig()
		cfg.CriticalColumnPatterns = []string{"id", "  "}
		assert.ErrorIs(t, cfg.Validate(nil), validator.ErrInvalidConfig)
	})
}

func TestConfigValidateMatchMode(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.PlaceholderMatchMode = "word_boundary"

	err := cfg.Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrInvalidConfig)
}
