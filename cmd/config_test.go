package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_NAME", "REPLANT_SCHEDULE", "AUDIT_SUBJECT_PREFIX", "NATS_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "perfumery", cfg.DBName)
	assert.Equal(t, "*/5 * * * * *", cfg.ReplantSchedule)
	assert.Equal(t, "audit", cfg.AuditSubjectPrefix)
	assert.Empty(t, cfg.NATSURL)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nSTORAGE_URL=http://storage:8080\n"), 0o600))
	t.Setenv("HTTP_PORT", "7070")
	unsetEnv(t, "STORAGE_URL")

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "http://storage:8080", cfg.StorageURL)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "perfumery", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=perfumery sslmode=disable", cfg.DSN())
}

// unsetEnv removes key for the duration of the test, including any value
// a loaded .env file puts there.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
