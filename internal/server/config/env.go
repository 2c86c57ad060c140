package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays LARKSTORE_* environment variables onto the Config.
// cmd/larkstored loads an optional .env file into the environment before
// this runs, so values work from either place. Unparseable numeric or
// boolean values are ignored rather than fatal.
func parseEnv(config *Config) {
	if v := os.Getenv("LARKSTORE_ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("LARKSTORE_BACKEND"); v != "" {
		config.Backend = v
	}
	if v := os.Getenv("LARKSTORE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("LARKSTORE_AUTH_KEY"); v != "" {
		config.AuthKey = v
	}
	if v := os.Getenv("LARKSTORE_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTTL = d
		}
	}
	if v := os.Getenv("LARKSTORE_LOCAL_QUOTA_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.LocalQuotaBytes = n
		}
	}
	if v := os.Getenv("LARKSTORE_ENABLE_SCHEDULER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.EnableScheduler = b
		}
	}
	if v := os.Getenv("LARKSTORE_S3_BUCKET"); v != "" {
		config.S3Bucket = v
	}
	if v := os.Getenv("LARKSTORE_S3_REGION"); v != "" {
		config.S3Region = v
	}
	if v := os.Getenv("LARKSTORE_S3_ENDPOINT"); v != "" {
		config.S3Endpoint = v
	}
	if v := os.Getenv("LARKSTORE_S3_ACCESS_KEY"); v != "" {
		config.S3AccessKey = v
	}
	if v := os.Getenv("LARKSTORE_S3_SECRET_KEY"); v != "" {
		config.S3SecretKey = v
	}
}
