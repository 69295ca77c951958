package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "")

	cfg := LoadConfig()

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "/api/v1", cfg.Server.APIPrefix)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "hospitals")

	cfg := LoadConfig()

	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=hospitals sslmode=disable TimeZone=UTC", cfg.Database.DSN())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "soon")
	t.Setenv("REDIS_DB", "first")

	cfg := LoadConfig()

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, parseOrigins(" http://a, ,http://b,"))
	assert.Empty(t, parseOrigins(""))
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()

	cfg.Database.Driver = "mongodb"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	cfg.Server.GinMode = "release"
	cfg.JWT.AccessSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWT.AccessSecret = "a-much-longer-secret-that-is-fine-123"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveDurations(t *testing.T) {
	tests := []struct {
		name  string
		zero  func(*Config)
		field string
	}{
		{"rate limit window", func(c *Config) { c.RateLimit.Window = 0 }, "RATE_LIMIT_WINDOW"},
		{"access expiry", func(c *Config) { c.JWT.AccessTokenExpiry = -time.Minute }, "ACCESS_TOKEN_EXPIRY"},
		{"refresh expiry", func(c *Config) { c.JWT.RefreshTokenExpiry = 0 }, "REFRESH_TOKEN_EXPIRY"},
		{"cleanup interval", func(c *Config) { c.Worker.TokenCleanupInterval = 0 }, "TOKEN_CLEANUP_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			cfg.Database.Driver = "mysql"
			tt.zero(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
