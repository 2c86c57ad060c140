// Package config handles configuration for the larkstored daemon,
// including defaults, JSON overlay, environment overlay and command-line
// flags.
package config

import "time"

// Backend names for the persistent-area repository.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds runtime settings for the larkstored daemon.
//
// Fields:
//   - Addr: bind address for the gRPC endpoint. Loopback by default; the
//     daemon serves local clients only.
//   - Backend: persistent-area backend (sqlite, postgres or memory).
//   - DatabaseDSN: sqlite file path or PostgreSQL DSN (pgx).
//   - AuthKey: shared key clients present in Handshake; also the HMAC secret
//     for session tokens (HS256). Do not use the default outside development.
//   - SessionTTL: session token lifetime.
//   - LocalQuotaBytes: byte budget of the local area, 0 for unbounded.
//   - EnableScheduler: run the in-daemon auto-backup scheduler.
//   - S3Bucket / S3Region / S3Endpoint / S3AccessKey / S3SecretKey: optional
//     S3-compatible sink for offsite backup copies. Empty bucket disables it.
type Config struct {
	Addr            string
	Backend         string
	DatabaseDSN     string
	AuthKey         string
	SessionTTL      time.Duration
	LocalQuotaBytes int64
	EnableScheduler bool
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: AuthKey is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8343"
	c.Backend = BackendSQLite
	c.DatabaseDSN = "larkstore.db"
	c.AuthKey = "dev-auth-key"
	c.SessionTTL = 12 * time.Hour
	c.LocalQuotaBytes = 10 * 1024 * 1024
	c.EnableScheduler = true
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
