package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classsync/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := config.Read(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "classsync-events", cfg.KafkaTopic)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "@every 1h", cfg.ReminderSchedule)
	assert.Equal(t, time.Minute, cfg.SettingsCacheTTL)
	assert.True(t, cfg.PostgresAutoMigrate)
	assert.Equal(t, 5, cfg.ConnectAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.ConnectDelay)
}

func TestRead_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nHTTP_PORT=9090\n"), 0o600))

	cfg, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 9090, cfg.HTTPPort)
}

func TestRead_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Read(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
