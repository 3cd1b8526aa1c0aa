package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIHost, cfg.APIHost)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, "memory", cfg.CacheBackend)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canto-field.yaml")
	err := os.WriteFile(path, []byte("domain: acme\ntoken: secret\npublic_url: https://example.org\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Domain)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "https://acme.canto.com", cfg.APIBase())
	assert.True(t, cfg.IsConfigured())
}

func TestLoadMissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CANTO_DOMAIN", "other")
	t.Setenv("CANTO_TOKEN", "tok")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "other", cfg.Domain)
	assert.Equal(t, "tok", cfg.Token)
}

func TestAPIBaseOverride(t *testing.T) {
	cfg := &Config{APIURL: "http://localhost:9999/", Token: "t"}

	assert.Equal(t, "http://localhost:9999", cfg.APIBase())
	assert.True(t, cfg.IsConfigured())
}

func TestConfigErrorsOrder(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, []string{
		"Canto domain not configured",
		"Canto API token not configured",
	}, cfg.ConfigErrors())

	cfg = &Config{Domain: "acme"}
	assert.Equal(t, []string{"Canto API token not configured"}, cfg.ConfigErrors())

	cfg = &Config{Domain: "acme", Token: "t"}
	assert.Empty(t, cfg.ConfigErrors())
}
