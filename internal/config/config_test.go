package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "blog-backend", cfg.App.Name)
	assert.Equal(t, 5500, cfg.App.Port)
	assert.Equal(t, 60, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("MYSQL_DB", "blog_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "blog_test", cfg.MySQL.DB)
}

func TestConfig_Addresses(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5500", cfg.HTTPAddr())
	assert.Contains(t, cfg.MySQLDSN(), "@tcp(127.0.0.1:3306)/blog_backend?")
}
