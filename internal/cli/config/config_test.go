package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Empty(t, cfg.Plan)
	assert.Empty(t, cfg.Sections)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	content := []byte("output: json\nwidth: 72\nsections:\n  - VC01\n  - SL02\n")
	require.NoError(t, os.WriteFile("memtour.yaml", content, 0600))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, []string{"VC01", "SL02"}, cfg.Sections)
	assert.Equal(t, "memtour.yaml", GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	defer ResetConfig()

	path := filepath.Join(dir, "lesson.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\n"), 0600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	defer ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	require.NoError(t, os.WriteFile("memtour.yaml", []byte("output: text\n"), 0600))
	t.Setenv("MEMTOUR_OUTPUT", "json")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	t.Setenv("MEMTOUR_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", DefaultOutput, "")
	require.NoError(t, flags.Parse([]string{"--output", "markdown"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	t.Setenv("MEMTOUR_OUTPUT", "json")

	// Flag exists but was not set, so env value wins
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", DefaultOutput, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid defaults", Config{Output: "auto", Color: "auto"}, ""},
		{"md alias", Config{Output: "md"}, ""},
		{"bad output", Config{Output: "pdf"}, "invalid output mode"},
		{"bad color", Config{Color: "maybe"}, "invalid color setting"},
		{"negative width", Config{Width: -1}, "invalid width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestLoadConfig_InvalidValueRejected(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	t.Setenv("MEMTOUR_OUTPUT", "pdf")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}

func TestGetLogger(t *testing.T) {
	t.Run("fallback discards", func(t *testing.T) {
		logger := GetLogger(context.Background())
		require.NotNil(t, logger)
	})

	t.Run("round trip", func(t *testing.T) {
		want := slog.New(slog.DiscardHandler)
		ctx := context.WithValue(context.Background(), LoggerKey(), want)
		assert.Same(t, want, GetLogger(ctx))
	})
}
