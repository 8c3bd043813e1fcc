package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nDB_DRIVER=postgres\nsession_cookie=\"sid\"\nbroken\n"), 0o600))

	out := map[string]string{}
	require.NoError(t, mergeDotEnv(path, out))

	assert.Equal(t, "postgres", out["DB_DRIVER"])
	assert.Equal(t, "sid", out["SESSION_COOKIE"])
	assert.NotContains(t, out, "BROKEN")
}

func TestMergeJSONConfigSkipsNonStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app_port":"9090","debug":true}`), 0o600))

	out := map[string]string{}
	require.NoError(t, mergeJSONConfig(path, out))

	assert.Equal(t, "9090", out["APP_PORT"])
	assert.NotContains(t, out, "DEBUG")
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	assert.Equal(t, 3*time.Second, RequestTimeout())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, KafkaBrokers())
}

func TestDurationFallback(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, time.Hour, SessionTTL())
}

func TestUnknownDriverFallsBackToSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("DATABASE_DSN", "")
	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, defaultSQLiteDSN, DatabaseDSN())
}
