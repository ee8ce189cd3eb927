package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("Overrides only the given flags", func(t *testing.T) {
		// Given: a loaded config
		conf := &config.Config{LogLevel: "info", Color: config.ColorAuto}

		// When: two flags are given
		flags, err := parseFlags([]string{"--color", "never", "--redis"})
		require.NoError(t, err)
		flags.apply(conf)

		// Then: those two fields change and the rest is kept
		assert.Equal(t, config.ColorNever, conf.Color)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, defaultConfigPath, flags.configPath)
	})

	t.Run("Reads the config path", func(t *testing.T) {
		flags, err := parseFlags([]string{"-c", "/etc/connectfour.yml", "--log-level=debug"})
		require.NoError(t, err)

		assert.Equal(t, "/etc/connectfour.yml", flags.configPath)
		assert.Equal(t, "debug", flags.logLevel)
	})

	t.Run("Rejects unknown flags", func(t *testing.T) {
		_, err := parseFlags([]string{"--board", "6x7"})
		assert.Error(t, err)
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Flags override invalid file values before validation", func(t *testing.T) {
		// Given: a config file with an unknown color mode
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("color: bogus\n"), 0o600))

		flags, err := parseFlags([]string{"--config", path, "--color", "never"})
		require.NoError(t, err)

		// When: the config is initialized
		var conf *config.Config
		require.NotPanics(t, func() { conf = initConfig(flags) })

		// Then: the flag value wins
		assert.Equal(t, config.ColorNever, conf.Color)
	})

	t.Run("Invalid values without an override still fail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("color: bogus\n"), 0o600))

		flags, err := parseFlags([]string{"--config", path})
		require.NoError(t, err)

		assert.Panics(t, func() { initConfig(flags) })
	})
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logLevel("warn"))
	assert.Equal(t, slog.LevelError, logLevel("error"))
	assert.Equal(t, slog.LevelInfo, logLevel("info"))
}
