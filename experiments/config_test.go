package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("loading a config over the defaults", func(t *testing.T) {
		path := writeConfig(t, `
name: letters
model:
  kind: random
  seed: 42
process:
  length: 3
  alphabet: [x, y, z]
  no_repeat: true
search:
  max_outputs: 10
`)

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "letters", cfg.Name)
		require.Equal(t, ModelRandom, cfg.Model.Kind)
		require.Equal(t, uint64(42), cfg.Model.Seed)
		require.Equal(t, 3, cfg.Process.Length)
		require.Equal(t, []string{"x", "y", "z"}, cfg.Process.Alphabet)
		require.True(t, cfg.Process.NoRepeat)
		require.Equal(t, 10, cfg.Search.MaxOutputs)
		require.Equal(t, "info", cfg.LogLevel, "Unset fields should keep their defaults")
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failing on malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "process: [unclosed"))

		require.Error(t, err)
	})

	t.Run("failing validation", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "model:\n  kind: oracle\n"))

		require.ErrorContains(t, err, "unknown model kind")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"missing name", func(c *Config) { c.Name = " " }, "missing name"},
		{"table without weights", func(c *Config) { c.Model.Weights = nil }, "needs weights"},
		{"negative weight", func(c *Config) { c.Model.Weights = []float64{0.5, -0.1} }, "negative"},
		{"empty alphabet", func(c *Config) { c.Process.Alphabet = nil }, "alphabet is empty"},
		{"non-positive length", func(c *Config) { c.Process.Length = 0 }, "length must be positive"},
		{"no repeat with one symbol", func(c *Config) {
			c.Process.NoRepeat = true
			c.Process.Alphabet = []string{"a"}
		}, "at least two symbols"},
		{"negative limit", func(c *Config) { c.Search.MaxRuns = -1 }, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}

	t.Run("accepting the defaults", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})
}
