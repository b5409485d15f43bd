package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8084
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "meetingroom"
password = "secret"
dbname = "smc_meetingroom"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = ""
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "smc-meetingroom-service"

[employee_service]
url = "http://localhost:8081"
timeout = 5

[schedule]
day_start = "08:00"
day_end = "21:00"
granularity_minutes = 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8084, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=meetingroom password=secret dbname=smc_meetingroom sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Schedule.GranularityMinutes)

	start, end, err := cfg.Schedule.Window()
	require.NoError(t, err)
	assert.Equal(t, 480, start)
	assert.Equal(t, 1260, end)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	broken := strings.Replace(validConfig, `day_start = "08:00"`, `day_start = "8:00"`, 1)

	_, err := Load(writeConfig(t, broken))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_InvalidPort(t *testing.T) {
	broken := strings.Replace(validConfig, "http_port = 8084", "http_port = 0", 1)

	_, err := Load(writeConfig(t, broken))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
