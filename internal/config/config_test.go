package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
dbname = "salon_planning"
`

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "svc"
password = "secret"
dbname = "salon_planning"

[redis]
enabled = true
addr = "redis.internal:6379"
ttl_seconds = 120

[salon_service]
url = "http://salons:8081"
timeout = 3

[planning]
open_hour = 8
close_hour = 20
slot_step_minutes = 15
week_start = "sunday"
revenue_policy = "completed_confirmed"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 120, cfg.Redis.TTLSeconds)
		assert.Equal(t, "http://salons:8081", cfg.SalonService.URL)
		assert.Equal(t, 8, cfg.Planning.OpenHour)
		assert.Equal(t, 20, cfg.Planning.CloseHour)
		assert.Equal(t, 15, cfg.Planning.SlotStepMinutes)
		assert.Equal(t, "sunday", cfg.Planning.WeekStart)
		assert.Equal(t, "completed_confirmed", cfg.Planning.RevenuePolicy)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 60, cfg.Redis.TTLSeconds)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, 9, cfg.Planning.OpenHour)
		assert.Equal(t, 19, cfg.Planning.CloseHour)
		assert.Equal(t, 30, cfg.Planning.SlotStepMinutes)
		assert.Equal(t, "monday", cfg.Planning.WeekStart)
		assert.Equal(t, "completed", cfg.Planning.RevenuePolicy)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[[[broken"))
		assert.ErrorIs(t, err, ErrParseConfig)
	})

	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
dbname = "salon_planning"
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("open hour after close hour", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[planning]
open_hour = 20
close_hour = 9
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("slot step must divide an hour", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[planning]
slot_step_minutes = 45
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown week start", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[planning]
week_start = "friday"
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown revenue policy", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[planning]
revenue_policy = "everything"
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("redis enabled requires addr", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[redis]
enabled = true
`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "salon_planning",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=svc password=secret dbname=salon_planning sslmode=disable", dsn)
}
