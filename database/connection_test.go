package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPoolRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	ClosePool()
	t.Cleanup(ClosePool)

	_, err := GetPool()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestClosePoolResetsSingleton(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	ClosePool()
	t.Cleanup(ClosePool)

	_, first := GetPool()
	require.Error(t, first)

	// After a reset the next GetPool re-evaluates the environment instead
	// of replaying the cached result.
	ClosePool()
	_, second := GetPool()
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}
