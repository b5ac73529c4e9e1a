package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, TransferMove, cfg.Transfer)
	require.True(t, cfg.Rename)
	require.True(t, cfg.SkipExisting)
	require.False(t, cfg.DryRun)
	require.Equal(t, ColorAuto, cfg.ColorMode)
	require.Equal(t, 400, cfg.WatchDebounceMS)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing dirs", func(c *Config) { c.InputDir = "" }, "need both input and output directories"},
		{"bad transfer", func(c *Config) { c.Transfer = "symlink" }, "invalid config field transfer"},
		{"bad color", func(c *Config) { c.ColorMode = "rainbow" }, "invalid config field colormode"},
		{"debounce too low", func(c *Config) { c.WatchDebounceMS = 5 }, "invalid config field watchdebouncems"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.InputDir = "/in"
			cfg.OutputDir = "/out"
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.ValidatePaths("/assets/in", "/assets/in"))
	require.Error(t, cfg.ValidatePaths("/assets/in", "/assets/in/sorted"))
	require.NoError(t, cfg.ValidatePaths("/assets/in", "/assets/out"))
	require.NoError(t, cfg.ValidatePaths("/assets/in", "/assets/input2"))
}

func TestNormalizeDirArg(t *testing.T) {
	require.Equal(t, "/a/b", NormalizeDirArg("/a/b/"))
	require.Equal(t, "/a/b", NormalizeDirArg("/a/b"))
	require.Equal(t, "/", NormalizeDirArg("/"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"transfer: copy\nrename: false\nwatch_debounce_ms: 900\nlog_file: /tmp/sorter.log\n"), 0o644))

	cfg := Default()
	require.NoError(t, LoadFile(&cfg, path, true))
	require.Equal(t, TransferCopy, cfg.Transfer)
	require.False(t, cfg.Rename)
	require.Equal(t, 900, cfg.WatchDebounceMS)
	require.Equal(t, "/tmp/sorter.log", cfg.LogFile)
	// Untouched keys keep defaults.
	require.True(t, cfg.SkipExisting)
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	require.NoError(t, LoadFile(&cfg, missing, false), "optional default location may be absent")
	require.Error(t, LoadFile(&cfg, missing, true), "explicit --config path must exist")
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transfer: [broken\n"), 0o644))
	cfg := Default()
	require.Error(t, LoadFile(&cfg, path, true))
}
