package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SNOWSEEKER_CONFIG", "PORT", "ENVIRONMENT", "CORS_ORIGIN", "STORAGE_DRIVER",
	"SQLITE_PATH", "DATABASE_URL", "CATALOG_PATH", "LOG_LEVEL", "LOG_FILE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "preferences.sqlite", filepath.Base(cfg.SQLitePath))
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "snowseeker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
storage_driver: postgres
database_url: postgres://file/db
log_level: debug
`), 0o600))

	t.Setenv("SNOWSEEKER_CONFIG", path)
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port, "env overrides file")
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown driver",
			env:  map[string]string{"STORAGE_DRIVER": "mongo"},
		},
		{
			name: "postgres without url",
			env:  map[string]string{"STORAGE_DRIVER": "postgres"},
		},
		{
			name: "non numeric port",
			env:  map[string]string{"PORT": "http"},
		},
		{
			name: "missing config file",
			env:  map[string]string{"SNOWSEEKER_CONFIG": "/nonexistent/snowseeker.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
