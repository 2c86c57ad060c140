package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Run("overlays every variable", func(t *testing.T) {
		t.Setenv("LARKSTORE_ADDR", "127.0.0.1:9200")
		t.Setenv("LARKSTORE_BACKEND", "memory")
		t.Setenv("LARKSTORE_DATABASE_DSN", "postgres://localhost/larkstore")
		t.Setenv("LARKSTORE_AUTH_KEY", "env_key")
		t.Setenv("LARKSTORE_SESSION_TTL", "90m")
		t.Setenv("LARKSTORE_LOCAL_QUOTA_BYTES", "4096")
		t.Setenv("LARKSTORE_ENABLE_SCHEDULER", "false")
		t.Setenv("LARKSTORE_S3_BUCKET", "bucket")
		t.Setenv("LARKSTORE_S3_REGION", "eu-central-1")
		t.Setenv("LARKSTORE_S3_ENDPOINT", "http://127.0.0.1:9000")
		t.Setenv("LARKSTORE_S3_ACCESS_KEY", "ak")
		t.Setenv("LARKSTORE_S3_SECRET_KEY", "sk")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "127.0.0.1:9200", cfg.Addr)
		assert.Equal(t, BackendMemory, cfg.Backend)
		assert.Equal(t, "postgres://localhost/larkstore", cfg.DatabaseDSN)
		assert.Equal(t, "env_key", cfg.AuthKey)
		assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
		assert.Equal(t, int64(4096), cfg.LocalQuotaBytes)
		assert.False(t, cfg.EnableScheduler)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "eu-central-1", cfg.S3Region)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.S3Endpoint)
		assert.Equal(t, "ak", cfg.S3AccessKey)
		assert.Equal(t, "sk", cfg.S3SecretKey)
	})

	t.Run("unset variables keep current values", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "127.0.0.1:8343", cfg.Addr)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
		assert.True(t, cfg.EnableScheduler)
	})

	t.Run("unparseable values are ignored", func(t *testing.T) {
		t.Setenv("LARKSTORE_SESSION_TTL", "ninety minutes")
		t.Setenv("LARKSTORE_LOCAL_QUOTA_BYTES", "10MB")
		t.Setenv("LARKSTORE_ENABLE_SCHEDULER", "yes please")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
		assert.Equal(t, int64(10*1024*1024), cfg.LocalQuotaBytes)
		assert.True(t, cfg.EnableScheduler)
	})
}
