package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "pattern", cfg.View)
	assert.Equal(t, 200.0, cfg.Pattern.Radius)
	assert.Equal(t, 20, cfg.Pattern.Segments)
	assert.Equal(t, 1.0, cfg.Pattern.Speed)
	assert.True(t, cfg.Pattern.AutoRotate)
	assert.Equal(t, 100.0, cfg.Art.ToolRadius)

	d, err := cfg.NoteDuration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "nested", "piverse.yaml")

	cfg := DefaultConfig()
	cfg.View = "art"
	cfg.Pattern.Segments = 35
	cfg.Pattern.ShowLines = false
	cfg.Digits.Count = 100
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "art", loaded.View)
	assert.Equal(t, 35, loaded.Pattern.Segments)
	assert.False(t, loaded.Pattern.ShowLines)
	assert.Equal(t, 100, loaded.Digits.Count)
	assert.Zero(t, loaded.Pattern.Rotation)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "piverse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern:\n  speed: 2.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Pattern.Speed)
	assert.Equal(t, 200.0, cfg.Pattern.Radius)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"view":     "view: education\n",
		"radius":   "pattern:\n  radius: 10\n",
		"segments": "pattern:\n  segments: 1\n",
		"note":     "audio:\n  note: soon\n",
		"tool":     "art:\n  tool: triangle\n",
		"tool_rad": "art:\n  tool_radius: 5\n",
		"yaml":     "view: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
