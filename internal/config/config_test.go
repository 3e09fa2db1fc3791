package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Feed.Limit)
	assert.Equal(t, 12, cfg.Feed.PreviewLimit)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxAvatarSize)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7000
database:
  driver: mysql
  url: user:pass@tcp(localhost:3306)/celobuddy
auth:
  jwt_secret: s3cr3t
  anon_key: anon
  service_key: service
feed:
  limit: 5
`), 0o600))

	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "service", cfg.Auth.ServiceKey)
	assert.Equal(t, 5, cfg.Feed.Limit)
	assert.Equal(t, 12, cfg.Feed.PreviewLimit)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
	assert.Contains(t, err.Error(), "jwt_secret")

	cfg.Database.DSN = "postgres://x"
	cfg.Auth.JWTSecret = "s"
	cfg.Auth.AnonKey = "same"
	cfg.Auth.ServiceKey = "same"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service_key")

	cfg.Auth.ServiceKey = "other"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())
}
