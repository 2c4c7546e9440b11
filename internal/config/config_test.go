package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "yoga_store", cfg.Database.DBName)
	assert.Equal(t, 10*time.Second, cfg.Checkout.Timeout())
	assert.False(t, cfg.Events.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
password = "secret"

[events]
enabled = true
url = "nats://nats:4222"

[checkout]
operation_timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "nats://nats:4222", cfg.Events.URL)
	assert.Equal(t, 3*time.Second, cfg.Checkout.Timeout())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[database]
password = "from-file"
`)
	t.Setenv("YOGA_DATABASE_PASSWORD", "from-env")
	t.Setenv("YOGA_SERVER_HTTP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, `[server`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "no db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "no metrics path", mutate: func(c *Config) { c.Metrics.Path = "" }},
		{name: "events without url", mutate: func(c *Config) { c.Events.Enabled = true; c.Events.URL = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.Checkout.OperationTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", d.DSN())
}
