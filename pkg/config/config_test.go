package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/denotag/pkg/errors"
	"github.com/arthur-debert/denotag/pkg/filesystem"
	"github.com/arthur-debert/denotag/pkg/types"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DENOTAG_CONFIG_DIR", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"deno", "run", "--allow-all"}, cfg.Run.Command)
	assert.Equal(t, types.CapturePiped, cfg.Run.Capture)
	assert.Equal(t, time.Duration(0), cfg.Run.Timeout)
	assert.Equal(t, "esm", cfg.Bundle.Format)
	assert.Equal(t, "browser", cfg.Bundle.Platform)
	assert.False(t, cfg.Output.TrimTrailingNewline)
}

func TestLoadLayers(t *testing.T) {
	userDir := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.toml"), []byte(`
[run]
command = ["node"]
timeout = "10s"

[bundle]
minify = true
`), 0644))

	mem := filesystem.NewMemory()
	require.NoError(t, mem.WriteFile("/site/.denotag.toml", []byte(`
[bundle]
format = "iife"
external = ["react"]
`), 0644))

	t.Run("user_and_project", func(t *testing.T) {
		cfg, err := Load(LoadOptions{FS: mem, DocumentDir: "/site"})
		require.NoError(t, err)

		assert.Equal(t, []string{"node"}, cfg.Run.Command)
		assert.Equal(t, 10*time.Second, cfg.Run.Timeout)
		assert.True(t, cfg.Bundle.Minify)
		assert.Equal(t, "iife", cfg.Bundle.Format)
		assert.Equal(t, []string{"react"}, cfg.Bundle.External)
	})

	t.Run("environment_overrides_files", func(t *testing.T) {
		t.Setenv("DENOTAG_RUN_COMMAND", "deno run -A")
		t.Setenv("DENOTAG_OUTPUT_TRIM_TRAILING_NEWLINE", "true")
		t.Setenv("DENOTAG_UNRELATED", "ignored")

		cfg, err := Load(LoadOptions{FS: mem, DocumentDir: "/site"})
		require.NoError(t, err)

		assert.Equal(t, []string{"deno", "run", "-A"}, cfg.Run.Command)
		assert.True(t, cfg.Output.TrimTrailingNewline)
	})

	t.Run("overrides_win", func(t *testing.T) {
		cfg, err := Load(LoadOptions{
			FS:          mem,
			DocumentDir: "/site",
			Overrides:   map[string]interface{}{"run.command": "bun run"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"bun", "run"}, cfg.Run.Command)
	})

	t.Run("skip_user_config", func(t *testing.T) {
		cfg, err := Load(LoadOptions{SkipUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"deno", "run", "--allow-all"}, cfg.Run.Command)
	})
}

func TestLoadExplicitConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "denotag.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("run:\n  capture: combined\nbundle:\n  platform: node\n"), 0644))

	cfg, err := Load(LoadOptions{ConfigFile: yamlPath})
	require.NoError(t, err)
	assert.Equal(t, types.CaptureCombined, cfg.Run.Capture)
	assert.Equal(t, "node", cfg.Bundle.Platform)

	tomlPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[output]\ntrim_trailing_newline = true\n"), 0644))

	cfg, err = Load(LoadOptions{ConfigFile: tomlPath})
	require.NoError(t, err)
	assert.True(t, cfg.Output.TrimTrailingNewline)

	_, err = Load(LoadOptions{ConfigFile: filepath.Join(dir, "config.json")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	_, err = Load(LoadOptions{ConfigFile: filepath.Join(dir, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadRejectsInvalidProjectConfig(t *testing.T) {
	isolate(t)
	mem := filesystem.NewMemory()
	require.NoError(t, mem.WriteFile("/site/denotag.toml", []byte("[run\ncommand = "), 0644))

	_, err := Load(LoadOptions{FS: mem, DocumentDir: "/site"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Run:    RunConfig{Command: []string{"deno", "run"}, Capture: types.CapturePiped},
			Bundle: types.BundleOptions{Format: "esm", Platform: "browser"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"empty_command", func(c *Config) { c.Run.Command = nil }, false},
		{"blank_executable", func(c *Config) { c.Run.Command = []string{""} }, false},
		{"bad_capture", func(c *Config) { c.Run.Capture = "tty" }, false},
		{"negative_timeout", func(c *Config) { c.Run.Timeout = -time.Second }, false},
		{"bad_format", func(c *Config) { c.Bundle.Format = "amd" }, false},
		{"bad_platform", func(c *Config) { c.Bundle.Platform = "deno" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
			}
		})
	}
}

func TestToTOML(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.ToTOML()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[run]")
	assert.Regexp(t, `timeout = ['"]0s['"]`, text)
	assert.Contains(t, text, "[bundle]")
	assert.Contains(t, text, "trim_trailing_newline = false")

	// the rendered file loads back to the same configuration
	path := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, os.WriteFile(path, out, 0644))
	again, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
