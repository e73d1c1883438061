package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalin/golfsr/config"
	"github.com/akalin/golfsr/gf2p8"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lfsr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	assert.Equal(t, gf2p8.DefaultPoly, cfg.Field.Poly)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "RAMRSBD", cfg.Output.Prefix)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, int64(0), cfg.Random.Seed)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
field:
  poly: 0x12b
output:
  color: never
  prefix: MY_GF
log:
  level: debug
random:
  seed: 42
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x12b), cfg.Field.Poly)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, "MY_GF", cfg.Output.Prefix)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, int64(42), cfg.Random.Seed)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "output:\n  color: always\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Output.Color)
	assert.Equal(t, "RAMRSBD", cfg.Output.Prefix)
	assert.Equal(t, gf2p8.DefaultPoly, cfg.Field.Poly)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()
	_, err := config.Load(writeConfig(t, "field: [1, 2"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()
	_, err := config.Load(writeConfig(t, "field:\n  poly: 0x11b\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, gf2p8.ErrUnsupportedField)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	for i, mutate := range []func(*config.Config){
		func(c *config.Config) { c.Field.Poly = 0 },
		func(c *config.Config) { c.Field.Poly = 0x11b },
		func(c *config.Config) { c.Output.Color = "sometimes" },
		func(c *config.Config) { c.Output.Prefix = "" },
		func(c *config.Config) { c.Output.Prefix = "9LIVES" },
		func(c *config.Config) { c.Output.Prefix = "A-B" },
		func(c *config.Config) { c.Log.Level = "trace" },
	} {
		cfg := config.Defaults()
		mutate(cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "i=%d", i)
	}

	cfg := config.Defaults()
	cfg.Output.Prefix = "_gf8"
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
}
