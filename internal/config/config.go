package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/saherflow/dashseed/internal/seeder"
)

const EnvPrefix = "DASHSEED"

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Log      Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider        string        `json:"provider" mapstructure:"provider" validate:"oneof=postgresql postgres mysql sqlite sqlite3"`
	URLEnv          string        `json:"url_env" mapstructure:"url_env" validate:"required"`
	MaxOpenConns    int           `json:"max_open_conns" mapstructure:"max_open_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
}

type Seed struct {
	AdminEmail           string `json:"admin_email" mapstructure:"admin_email" validate:"required,email"`
	DeviceType           string `json:"device_type" mapstructure:"device_type" validate:"required"`
	DashboardName        string `json:"dashboard_name" mapstructure:"dashboard_name" validate:"required,max=255"`
	DashboardDescription string `json:"dashboard_description" mapstructure:"dashboard_description"`
}

type Log struct {
	Level string `json:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `json:"file" mapstructure:"file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	seed := seeder.DefaultOptions()
	return &Config{
		Version: "1",
		Database: Database{
			Provider:        "postgresql",
			URLEnv:          "DATABASE_URL",
			MaxOpenConns:    2,
			ConnMaxLifetime: 15 * time.Minute,
		},
		Seed: Seed{
			AdminEmail:           seed.AdminEmail,
			DeviceType:           seed.DeviceType,
			DashboardName:        seed.DashboardName,
			DashboardDescription: seed.DashboardDescription,
		},
		Log: Log{Level: "info"},
	}
}

// SetDefaults registers every key with viper so that DASHSEED_* environment
// variables can override keys that are absent from the config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("database.provider", d.Database.Provider)
	v.SetDefault("database.url_env", d.Database.URLEnv)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.conn_max_lifetime", d.Database.ConnMaxLifetime)
	v.SetDefault("seed.admin_email", d.Seed.AdminEmail)
	v.SetDefault("seed.device_type", d.Seed.DeviceType)
	v.SetDefault("seed.dashboard_name", d.Seed.DashboardName)
	v.SetDefault("seed.dashboard_description", d.Seed.DashboardDescription)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// SeedOptions converts the seed section into seeder options.
func (c *Config) SeedOptions() seeder.Options {
	return seeder.Options{
		AdminEmail:           c.Seed.AdminEmail,
		DeviceType:           c.Seed.DeviceType,
		DashboardName:        c.Seed.DashboardName,
		DashboardDescription: c.Seed.DashboardDescription,
	}
}
