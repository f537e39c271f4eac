// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/internal/config"
	"github.com/katalvlaran/lvlprob/table"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Encoding)
	require.Equal(t, int64(initialize.DefaultSeed), cfg.Seed)
	require.Equal(t, table.DefaultEpsilon, cfg.Dump.Epsilon)
	require.Equal(t, 20, cfg.Summary.Width)
	require.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlprob.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  encoding: json
seed: 42
summary:
  width: 30
`), 0o600))
	t.Setenv("LVLPROB_SEED", "7")
	t.Setenv("LVLPROB_WORKERS", "3")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Logger().Encoding)
	require.Equal(t, int64(7), cfg.Seed) // env beats file
	require.Equal(t, 30, cfg.Summary.Width)
	require.Equal(t, 3, cfg.Workers)
}

func TestValidate(t *testing.T) {
	t.Setenv("LVLPROB_SUMMARY_WIDTH", "0")
	_, err := config.Load(config.New(), "")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
