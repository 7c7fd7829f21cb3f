package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "team_task", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=team_task sslmode=disable", cfg.Database.GetDSN())
}

func TestLoadFrom_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	env := "POSTGRES_HOST=db\nPOSTGRES_PORT=6543\nLOG_FORMAT=text\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/tt?sslmode=disable")
	t.Setenv("POSTGRES_HOST", "")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/tt?sslmode=disable", cfg.Database.GetDSN())
}

func TestLoadFrom_WarningLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warning")
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Log.Level)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := LoadFrom(t.TempDir())
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLogConfig_FileOutput(t *testing.T) {
	cfg := LogConfig{File: "/var/log/team_task.log", MaxSizeMB: 10, MaxBackups: 2, MaxAgeDays: 7, Compress: true}
	out := cfg.FileOutput()
	assert.Equal(t, "/var/log/team_task.log", out.Path)
	assert.Equal(t, 10, out.MaxSizeMB)
	assert.True(t, out.Compress)
}
