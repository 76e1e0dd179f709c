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

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10

[database]
host = "db.internal"
port = 5433
user = "booky"
password = "secret"
dbname = "booky_scheduling"
sslmode = "require"

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
service_name = "test-service"
path = "/metrics"

[booking]
token_ttl_hours = 24

[retention]
days = 14
schedule = "30 2 * * *"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 24, cfg.Booking.TokenTTLHours)
	assert.Equal(t, 14, cfg.Retention.Days)
	assert.Equal(t, "30 2 * * *", cfg.Retention.Schedule)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "booky"
dbname = "booky_scheduling"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 48, cfg.Booking.TokenTTLHours)
	assert.Equal(t, "0 3 * * *", cfg.Retention.Schedule)
	assert.Equal(t, 0, cfg.Retention.Days)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing host",
			content: `
[database]
user = "booky"
dbname = "booky_scheduling"
`,
		},
		{
			name: "missing user",
			content: `
[database]
host = "localhost"
dbname = "booky_scheduling"
`,
		},
		{
			name: "missing dbname",
			content: `
[database]
host = "localhost"
user = "booky"
`,
		},
		{
			name: "negative retention",
			content: `
[database]
host = "localhost"
user = "booky"
dbname = "booky_scheduling"

[retention]
days = -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "booky",
		Password: "secret",
		DBName:   "booky_scheduling",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=booky password=secret dbname=booky_scheduling sslmode=disable",
		d.DSN())
}
