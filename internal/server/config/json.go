package config

import (
	"encoding/json"
	"os"

	"github.com/larkstore/larkstore/internal/flagx"
	"github.com/larkstore/larkstore/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. It uses
// timex.Duration for interval fields so both "12h" strings and integer
// nanoseconds parse, and pointers where absence must be distinguishable
// from the zero value. Present fields are copied into the runtime Config;
// absent ones keep their current values.
type JsonConfig struct {
	Addr            string         `json:"addr"`
	Backend         string         `json:"backend"`
	DatabaseDSN     string         `json:"database_dsn"`
	AuthKey         string         `json:"auth_key"`
	SessionTTL      timex.Duration `json:"session_ttl"`
	LocalQuotaBytes *int64         `json:"local_quota_bytes"`
	EnableScheduler *bool          `json:"enable_scheduler"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3Endpoint      string         `json:"s3_endpoint"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. An unreadable file or invalid JSON panics:
// a daemon started with a broken config file should not come up.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.Backend != "" {
		config.Backend = c.Backend
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.AuthKey != "" {
		config.AuthKey = c.AuthKey
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.LocalQuotaBytes != nil {
		config.LocalQuotaBytes = *c.LocalQuotaBytes
	}
	if c.EnableScheduler != nil {
		config.EnableScheduler = *c.EnableScheduler
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3Endpoint != "" {
		config.S3Endpoint = c.S3Endpoint
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
}
