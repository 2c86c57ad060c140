package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.Addr, "127.0.0.1:8343")
	assert.Equal(t, c.Backend, BackendSQLite)
	assert.Equal(t, c.DatabaseDSN, "larkstore.db")
	assert.Equal(t, c.AuthKey, "dev-auth-key")
	assert.Equal(t, c.SessionTTL, 12*time.Hour)
	assert.Equal(t, c.LocalQuotaBytes, int64(10*1024*1024))
	assert.True(t, c.EnableScheduler)
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Empty(t, c.S3Bucket)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.Addr, "127.0.0.1:8343")
	assert.Equal(t, c.Backend, BackendSQLite)
	assert.Equal(t, c.DatabaseDSN, "larkstore.db")
	assert.Equal(t, c.SessionTTL, 12*time.Hour)
	assert.Equal(t, c.LocalQuotaBytes, int64(10*1024*1024))
	assert.True(t, c.EnableScheduler)
}
