package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("overrides from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenarios.yaml")
		require.NoError(t, os.WriteFile(path, []byte("widths: [2, 4]\niterations: 5\nbyValue: true\n"), 0644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4}, cfg.Widths)
		assert.Equal(t, defaultConfig().Heights, cfg.Heights)
		assert.Equal(t, 5, cfg.Iterations)
		assert.True(t, cfg.ByValue)
	})

	t.Run("rejects bad sizes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenarios.yaml")
		require.NoError(t, os.WriteFile(path, []byte("heights: [0]\n"), 0644))

		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}

func TestRunScenario(t *testing.T) {
	res, err := runScenario(3, 4, 10, false)
	require.NoError(t, err)
	assert.Equal(t, "propagate: 3 * 4", res.Name)
	assert.Equal(t, 10, res.Digests)
	// every chain ends one past its depth above the source
	assert.Equal(t, 3*(10+1+4), res.LeafSum)
}
