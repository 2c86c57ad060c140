package config

import (
	"flag"
	"os"
	"time"

	"github.com/larkstore/larkstore/internal/flagx"
)

// parseFlags populates selected daemon Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., "127.0.0.1:8343")
//	-b string   storage backend: sqlite, postgres or memory
//	-d string   database DSN or sqlite file path
//	-k string   shared auth key
//	-s int      session token lifetime, minutes
//	-q int      local area quota in bytes, 0 for unbounded
//	-j bool     run the auto-backup scheduler
//	-u string   S3 access key
//	-p string   S3 secret key
//	-o string   S3 bucket for offsite backup copies
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-k", "-s", "-q", "-j", "-u", "-p", "-o", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to serve on")
	fs.StringVar(&config.Backend, "b", config.Backend, "storage backend: sqlite, postgres or memory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN or sqlite path")
	fs.StringVar(&config.AuthKey, "k", config.AuthKey, "shared auth key")

	sessionTTL := fs.Int("s", int(config.SessionTTL.Minutes()), "session_ttl (in minutes)")

	fs.Int64Var(&config.LocalQuotaBytes, "q", config.LocalQuotaBytes, "local area quota in bytes, 0 for unbounded")
	fs.BoolVar(&config.EnableScheduler, "j", config.EnableScheduler, "run the auto-backup scheduler")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "o", config.S3Bucket, "S3 bucket for offsite backup copies")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3Endpoint, "e", config.S3Endpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
