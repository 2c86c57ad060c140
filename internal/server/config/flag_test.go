package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-b", "postgres", "-d", "postgres://localhost/larkstore",
			"-k", "topsecret", "-s", "30", "-q", "1024", "-j=false",
			"-u", "ak", "-p", "sk", "-o", "backups", "-g", "us-west-1", "-e", "http://endpoint",
		}, expectPanic: false,
			expected: &Config{
				Addr:            "127.0.0.1:9090",
				Backend:         "postgres",
				DatabaseDSN:     "postgres://localhost/larkstore",
				AuthKey:         "topsecret",
				SessionTTL:      30 * time.Minute,
				LocalQuotaBytes: 1024,
				EnableScheduler: false,
				S3AccessKey:     "ak",
				S3SecretKey:     "sk",
				S3Bucket:        "backups",
				S3Region:        "us-west-1",
				S3Endpoint:      "http://endpoint",
			}},
		{name: "bare bool flag", args: []string{"cmd", "-j"},
			expected: &Config{EnableScheduler: true}},
		{name: "unknown flags ignored", args: []string{"cmd", "-z", "1", "--weird=x", "-a", "127.0.0.1:9091"},
			expected: &Config{Addr: "127.0.0.1:9091"}},
		{name: "bad session minutes", args: []string{"cmd", "-s", "soon"}, expectPanic: true},
		{name: "bad quota", args: []string{"cmd", "-q", "10MB"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
