package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/internal/dataset"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvlsort.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, want.Size, cfg.Size)
	assert.Equal(t, want.MaxValue, cfg.MaxValue)
	assert.Equal(t, want.Kind, cfg.Kind)
	assert.Equal(t, want.Output, cfg.Output)
	assert.Equal(t, want.Workers, cfg.Workers)
	assert.Equal(t, want.SearchTimeout, cfg.SearchTimeout)
	assert.Equal(t, want.Bogo, cfg.Bogo)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	path := writeFile(t, `
size: 50
max_value: 7
kind: names
search_timeout: 5s
bogo:
  max_len: 6
  bogobogo_max_len: 4
  max_shuffles: 100
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, 7, cfg.MaxValue)
	assert.Equal(t, "names", cfg.Kind)
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout)
	assert.Equal(t, config.BogoConfig{MaxLen: 6, BogoBogoMaxLen: 4, MaxShuffles: 100}, cfg.Bogo)
	assert.Equal(t, path, cfg.FileUsed)

	t.Setenv("LVLSORT_SIZE", "60")
	t.Setenv("LVLSORT_BOGO__MAX_LEN", "5")
	cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Size, "env beats file")
	assert.Equal(t, 5, cfg.Bogo.MaxLen, "double underscore nests")

	fs := newFlags(t, "--size", "70", "--bogo-max-shuffles", "42", "--bogobogo-max-len", "3", "-o", "json")
	cfg, err = config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.Size, "flags beat env")
	assert.Equal(t, 42, cfg.Bogo.MaxShuffles)
	assert.Equal(t, 3, cfg.Bogo.BogoBogoMaxLen)
	assert.Equal(t, 5, cfg.Bogo.MaxLen, "bogobogo gate is independent of the bogo gate")
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 7, cfg.MaxValue, "unset flags keep lower layers")
}

func TestLoad_DurationFlag(t *testing.T) {
	cfg, err := config.Load("", newFlags(t, "--search-timeout", "150ms"))
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load("", newFlags(t, "--kind", "floats", "--workers", "0"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "kind")
	assert.Contains(t, err.Error(), "workers")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Output = "xml"
	cfg.MaxValue = 0
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "max_value")
}

func TestValidate_KindsComeFromDataset(t *testing.T) {
	for _, kind := range []dataset.Kind{dataset.KindInts, dataset.KindNames} {
		cfg := config.Default()
		cfg.Kind = string(kind)
		assert.NoError(t, cfg.Validate(), "kind %q", kind)
	}

	cfg := config.Default()
	cfg.Kind = "floats"
	cfg.Bogo.BogoBogoMaxLen = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), dataset.ErrUnknownKind.Error())
	assert.Contains(t, err.Error(), "bogo.bogobogo_max_len")
}

func TestGetLogger_Fallback(t *testing.T) {
	l := config.GetLogger(context.Background())
	require.NotNil(t, l)
	l.Info("discarded")

	custom := config.NewLogger(os.Stderr, true)
	ctx := config.WithLogger(context.Background(), custom)
	assert.Same(t, custom, config.GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, config.Default(), config.FromContext(context.Background()))

	cfg := config.Default()
	cfg.Size = 3
	ctx := config.WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, config.FromContext(ctx))
}
