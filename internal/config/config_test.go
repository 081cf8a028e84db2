package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.HTTPPort)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, time.Hour, cfg.UploadURLTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}

func TestLoadMemoryBackend(t *testing.T) {
	t.Setenv("VIDEO_STORE_BACKEND", " Memory ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsMemoryStore())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("VIDEO_STORE_BACKEND", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresDSNForPostgres(t *testing.T) {
	t.Setenv("VIDEO_STORE_BACKEND", "postgres")
	t.Setenv("DB_POSTGRESQL_WRITE_DSN", " ")

	_, err := Load()
	assert.Error(t, err)
}

func TestPublicBaseURL(t *testing.T) {
	cfg := &Config{S3Bucket: "uploads", S3Region: "us-east-1"}
	assert.Equal(t, "https://uploads.s3.us-east-1.amazonaws.com", cfg.PublicBaseURL())

	cfg.S3PublicBaseURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com", cfg.PublicBaseURL())

	assert.Empty(t, (&Config{}).PublicBaseURL())
}

func TestLoadTraceSampleRate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.TraceSampleRate)

	t.Setenv("TRACE_SAMPLE_RATE", "0.1")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.TraceSampleRate)

	t.Setenv("TRACE_SAMPLE_RATE", "1.5")
	_, err = Load()
	assert.Error(t, err)
}
