package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroweather/manager"
)

func TestLoadEmbedded(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.OpenMeteo.BaseURL)
	assert.Equal(t, manager.DefaultCoordinate, cfg.Defaults)
	assert.Equal(t, manager.English, cfg.Lang())
	assert.Equal(t, "*", cfg.CORS.AllowOrigin)
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", cfg.CORS.AllowHeaders)
}

func TestLoadFileOverridesEmbedded(t *testing.T) {
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: th\ndefaults:\n  lat: 18.7883\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, manager.Thai, cfg.Lang())
	assert.Equal(t, 18.7883, cfg.Defaults.Latitude)
	assert.Equal(t, 100.5018, cfg.Defaults.Longitude)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadConfigPathEnv(t *testing.T) {
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api.open-meteo.com:\n  baseURL: http://localhost:9000/v1/forecast\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/v1/forecast", cfg.OpenMeteo.BaseURL)
}

func TestLoadPortEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err = Load(path)
	assert.ErrorContains(t, err, "parse config")
}
