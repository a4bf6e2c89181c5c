package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_APP_DATABASE", "waitinglist")
	t.Setenv("DB_APP_USER", "app")
	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, 5, cfg.DBAppConnectionLimit)
	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "db", cfg.BlobBackend)
	assert.Equal(t, 24*time.Hour, cfg.MaintenanceInterval)
	assert.False(t, cfg.PrettyLog)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTHZ_CLIENT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTHZ_CLIENT_ID")
}

func TestLoadSQLiteNeedsNoUser(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_TYPE", "SQLite-Pure")
	t.Setenv("DB_APP_USER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsSQLite())
}

func TestLoadRejectsUnknownBlobBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("BLOB_BACKEND", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOB_BACKEND")
}

func TestLoadReadsEnvFile(t *testing.T) {
	setRequired(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAINTENANCE_INTERVAL=90m\nLOG_PRETTY=true\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	// godotenv never overrides variables already present
	os.Unsetenv("MAINTENANCE_INTERVAL")
	os.Unsetenv("LOG_PRETTY")
	t.Cleanup(func() {
		os.Unsetenv("MAINTENANCE_INTERVAL")
		os.Unsetenv("LOG_PRETTY")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.MaintenanceInterval)
	assert.True(t, cfg.PrettyLog)
}
