package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/config"
)

type testConfig struct {
	Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Sites   []string      `env:"SITES" envSeparator:","`
	Debug   bool          `env:"DEBUG"`
}

type requiredConfig struct {
	Key string `env:"API_KEY,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Nil(t, cfg.Sites)
	})

	t.Run("environment values", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{
			"HTTP_ADDR": ":9000",
			"SITES":     "payflow,ledger",
			"DEBUG":     "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, []string{"payflow", "ledger"}, cfg.Sites)
		assert.True(t, cfg.Debug)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load[testConfig](
			config.WithPrefix("LANDKIT_"),
			config.WithEnvironment(map[string]string{"LANDKIT_HTTP_ADDR": ":7000", "HTTP_ADDR": ":1"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Addr)
	})

	t.Run("env files with precedence", func(t *testing.T) {
		t.Parallel()
		base := writeEnvFile(t, "HTTP_ADDR=:1000\nTIMEOUT=1s\n")
		local := writeEnvFile(t, "TIMEOUT=2s\n")

		cfg, err := config.Load[testConfig](
			config.WithEnvFiles(base, local, filepath.Join(t.TempDir(), "missing.env")),
			config.WithEnvironment(map[string]string{"HTTP_ADDR": ":3000"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
	})

	t.Run("required missing", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[requiredConfig](config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load[testConfig](config.WithEnvironment(map[string]string{"TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		cfg := config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{"API_KEY": "k"}))
		assert.Equal(t, "k", cfg.Key)
	})
}
