package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "GIN_MODE", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "SQLITE_PATH", "TAX_RATE", "TABLE_RESET_CRON", "CORS_ORIGINS", "SEED_DATA",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.1", cfg.TaxRate.String())
	assert.Empty(t, cfg.TableResetCron)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=restaurant sslmode=disable", cfg.DB.DSN())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset.
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "TAX_RATE", "TABLE_RESET_CRON", "CORS_ORIGINS", "SEED_DATA"} {
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(t.TempDir(), "test.env")
	content := "APP_PORT=9090\nDB_DRIVER=sqlite\nTAX_RATE=0.08\nTABLE_RESET_CRON=0 4 * * *\n" +
		"CORS_ORIGINS=http://localhost:5173, http://pos.local\nSEED_DATA=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"APP_PORT", "DB_DRIVER", "TAX_RATE", "TABLE_RESET_CRON", "CORS_ORIGINS", "SEED_DATA"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "0.08", cfg.TaxRate.String())
	assert.Equal(t, "0 4 * * *", cfg.TableResetCron)
	assert.Equal(t, []string{"http://localhost:5173", "http://pos.local"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedData)
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "7000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"DB_PORT":   "not-a-port",
		"TAX_RATE":  "1.5",
		"SEED_DATA": "maybe",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
