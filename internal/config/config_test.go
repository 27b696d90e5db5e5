package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  env: development
identity:
  url: http://file-identity
  anon_key: file-key
completion:
  cache_ttl_sec: 5
`), 0o600))

	t.Setenv("SUPABASE_URL", "http://env-identity")
	t.Setenv("SUPABASE_ANON_KEY", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "http://env-identity", cfg.Identity.URL)
	assert.Equal(t, "file-key", cfg.Identity.AnonKey)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, int64(5), int64(cfg.CompletionCacheTTL().Seconds()))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_MissingIdentitySettings(t *testing.T) {
	cfg := defaults()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
	assert.Contains(t, err.Error(), "SUPABASE_ANON_KEY")

	cfg.Identity.URL = "http://identity"
	err = cfg.Validate()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPABASE_URL")
}
