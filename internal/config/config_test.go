package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Port:        "5000",
			BaseURL:     "http://localhost:5000",
			Environment: "development",
			LogFilePath: "logs/app.log",
		},
		Database: DatabaseConfig{
			Driver:       "sqlite",
			Connection:   "file::memory:",
			LogLevel:     "silent",
			DeletePolicy: "cascade",
		},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "host=localhost")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "cascade", cfg.Database.DeletePolicy)
	assert.Equal(t, "host=localhost", cfg.Database.Connection)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("STORE_DELETE_POLICY", "nullify")
	t.Setenv("GO_ENV", "production")
	t.Setenv("OTEL_ENABLED", "not-a-bool")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "nullify", cfg.Database.DeletePolicy)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.Connection = "" }, wantErr: true},
		{name: "unknown delete policy", mutate: func(c *Config) { c.Database.DeletePolicy = "restrict" }, wantErr: true},
		{name: "non numeric port", mutate: func(c *Config) { c.App.Port = "http" }, wantErr: true},
		{name: "tracing without endpoint", mutate: func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Endpoint = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
