package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultBindings(), cfg.Bindings)
	assert.Equal(t, 24.0, cfg.FontSize)
	assert.Equal(t, defaultFontPath(), cfg.FontPath)
	assert.Equal(t, "assets/red_rectangle.png", cfg.PaddleSprite)
	assert.Equal(t, FrontendWindow, cfg.Frontend)
	assert.Equal(t, "pong.log", cfg.Log.Filename)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Empty(t, cfg.Source, "No file should be reported when only defaults apply")
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[key]
up = "K_UP"
down = "K_DOWN"

[font]
path = "fonts/mono.ttf"
size = 32

[render]
frontend = "terminal"

[log]
level = "Debug"
max_backups = 5
compress = true
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, Bindings{Up: KeyUp, Down: KeyDown}, cfg.Bindings)
	assert.Equal(t, "fonts/mono.ttf", cfg.FontPath)
	assert.Equal(t, 32.0, cfg.FontSize)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, "Debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.True(t, cfg.Log.Compress)
	assert.Equal(t, 28, cfg.Log.MaxAge, "Unset values keep their defaults")
	assert.Equal(t, path, cfg.Source)
}

func TestLoadConfigSearchPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[key]\nup = \"K_i\"\ndown = \"K_k\"\n")

	cfg, err := LoadConfig("", nil, dir)
	require.NoError(t, err)

	assert.Equal(t, Bindings{Up: KeyI, Down: KeyK}, cfg.Bindings)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadConfigExtendedKeyNames(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[key]\nup = \"K_KP8\"\ndown = \"K_F1\"\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Bindings{Up: KeyKP8, Down: KeyF1}, cfg.Bindings)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[key]\nup = \"K_NOPE\"\n")

	_, err := LoadConfig(path, nil)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "key.up", cfgErr.Field)
	assert.Equal(t, "K_NOPE", cfgErr.Value)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"frontend", "[render]\nfrontend = \"vga\"\n", "render.frontend"},
		{"font size", "[font]\nsize = 0\n", "font.size"},
		{"log size", "[log]\nmax_size = \"big\"\n", "log.max_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)

			_, err := LoadConfig(path, nil)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err, "An explicitly named config file must exist")
}

func TestLoadConfigFrontendFlag(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[render]\nfrontend = \"window\"\n")

	flags := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	flags.String("frontend", FrontendWindow, "")
	require.NoError(t, flags.Parse([]string{"--frontend=terminal"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend, "The flag should win over the file")
}

func TestLoadConfigUnsetFlagKeepsFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[render]\nfrontend = \"terminal\"\n")

	flags := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	flags.String("frontend", FrontendWindow, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "key.down", Value: "K_?", Err: ErrUnknownKey}
	assert.Equal(t, "invalid key.down: K_?: unknown key name", err.Error())
}
