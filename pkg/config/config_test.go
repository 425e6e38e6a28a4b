package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresAPIURL(t *testing.T) {
	t.Setenv("API_URL", "")

	cfg, err := LoadConfig(t.TempDir())

	require.ErrorIs(t, err, ErrAPIURLNotSet)
	assert.Nil(t, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/api/")
	t.Setenv("API_SERVER_URL", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.API.URL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.API.InsecureSkipVerify)
	assert.Equal(t, "browser", cfg.Runtime.Context)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "offerhub:", cfg.Storage.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("API_URL", "http://localhost:5000/api")

	content := []byte(`
api:
  timeout: 3s
runtime:
  context: server
storage:
  driver: memory
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "server", cfg.Runtime.Context)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:5000/api")
	t.Setenv("API_TIMEOUT", "soon")

	_, err := LoadConfig(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.timeout")
}

func TestLoadServerConfig_NoAPIURL(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := LoadServerConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
}

func TestAPIConfig_ServerAPIURL(t *testing.T) {
	testCases := []struct {
		name string
		cfg  APIConfig
		want string
	}{
		{name: "explicit server url", cfg: APIConfig{URL: "http://a", ServerURL: "http://b"}, want: "http://b"},
		{name: "falls back to client url", cfg: APIConfig{URL: "http://a"}, want: "http://a"},
		{name: "hardcoded fallback", cfg: APIConfig{}, want: DefaultServerAPIURL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.ServerAPIURL())
		})
	}
}
