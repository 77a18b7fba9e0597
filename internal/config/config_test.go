package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "postgresql", cfg.Database.Provider)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
	assert.Equal(t, "admin@saherflow.com", cfg.Seed.AdminEmail)
	assert.Equal(t, "MPFM", cfg.Seed.DeviceType)
	assert.Equal(t, "MPFM Production Dashboard", cfg.Seed.DashboardName)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashseed.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database": {"provider": "mysql", "url_env": "MYSQL_URL", "conn_max_lifetime": "5m"},
		"seed": {"device_type": "ESP", "dashboard_name": "ESP Dashboard"}
	}`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Database.Provider)
	assert.Equal(t, "MYSQL_URL", cfg.Database.URLEnv)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "ESP", cfg.Seed.DeviceType)
	assert.Equal(t, "ESP Dashboard", cfg.Seed.DashboardName)
	// keys absent from the file keep their defaults
	assert.Equal(t, "admin@saherflow.com", cfg.Seed.AdminEmail)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DASHSEED_SEED_ADMIN_EMAIL", "ops@saherflow.com")
	t.Setenv("DASHSEED_DATABASE_PROVIDER", "sqlite")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "ops@saherflow.com", cfg.Seed.AdminEmail)
	assert.Equal(t, "sqlite", cfg.Database.Provider)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad provider", func(c *Config) { c.Database.Provider = "oracle" }, "Provider"},
		{"missing url env", func(c *Config) { c.Database.URLEnv = "" }, "URLEnv"},
		{"bad email", func(c *Config) { c.Seed.AdminEmail = "admin" }, "AdminEmail"},
		{"missing device type", func(c *Config) { c.Seed.DeviceType = "" }, "DeviceType"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "Level"},
		{"negative pool", func(c *Config) { c.Database.MaxOpenConns = -1 }, "MaxOpenConns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := Default()
	cfg.Database.URLEnv = "DASHSEED_TEST_DB_URL"

	t.Setenv("DASHSEED_TEST_DB_URL", "")
	_, err := cfg.GetDatabaseURL()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHSEED_TEST_DB_URL")

	t.Setenv("DASHSEED_TEST_DB_URL", "postgres://localhost/saherflow")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/saherflow", url)
}

func TestSeedOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed.AdminEmail = "ops@saherflow.com"

	opts := cfg.SeedOptions()
	assert.Equal(t, "ops@saherflow.com", opts.AdminEmail)
	assert.Equal(t, "MPFM", opts.DeviceType)
	assert.False(t, opts.DryRun)
}
