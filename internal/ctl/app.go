// Package ctl implements the larkstorectl admin CLI: daemon status,
// profile listing, raw key-value access, config export/import, backups and
// key rotation. Every command talks to the daemon through the same manager
// stack the extension surfaces use.
package ctl

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/larkstore/larkstore/internal/backup"
	storecfg "github.com/larkstore/larkstore/internal/config"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/hostkv/grpckv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/storage"
	"github.com/larkstore/larkstore/internal/vault"
)

const clientName = "larkstorectl"

// App runs one CLI invocation. Output goes to out, prompts and errors to
// errw; newStore is a seam so tests can run against an in-memory store.
type App struct {
	out    io.Writer
	errw   io.Writer
	in     *bufio.Reader
	logger logging.Logger

	newStore func(endpoint, authKey string, logger logging.Logger) (hostkv.Store, error)
}

func NewApp(logger logging.Logger) *App {
	return &App{
		out:    os.Stdout,
		errw:   os.Stderr,
		in:     bufio.NewReader(os.Stdin),
		logger: logger,
		newStore: func(endpoint, authKey string, logger logging.Logger) (hostkv.Store, error) {
			return grpckv.New(endpoint, clientName, authKey, logger)
		},
	}
}

// session holds the manager stack for one command. Managers initialize
// lazily; close flushes pending writes before the process exits.
type session struct {
	store   hostkv.Store
	vault   *vault.Manager
	engine  *storage.Manager
	config  *storecfg.Manager
	backups *backup.Service
}

func (a *App) newSession(store hostkv.Store) *session {
	vlt := vault.NewManager(store, hostkv.AreaLocal, a.logger)
	engine := storage.NewManager(store, vlt, a.logger, storage.Options{})
	cfgMgr := storecfg.NewManager(engine, vlt, a.logger)
	backups := backup.NewService(store, engine, vlt, a.logger, backup.Options{})
	return &session{store: store, vault: vlt, engine: engine, config: cfgMgr, backups: backups}
}

func (s *session) close(ctx context.Context) error {
	s.config.Close()
	err := s.engine.Close(ctx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}

// Run parses the global flags, dials the daemon and dispatches the
// subcommand. The returned error is already user-readable; main prints it
// and exits non-zero.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(clientName, flag.ContinueOnError)
	fs.SetOutput(a.errw)
	addr := fs.String("a", envOr("LARKSTORED_ADDR", "127.0.0.1:8343"), "daemon gRPC address")
	authKey := fs.String("k", envOr("LARKSTORED_AUTH_KEY", "dev-auth-key"), "shared auth key")
	fs.Usage = func() { a.usage() }

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		a.usage()
		return fmt.Errorf("no command given")
	}
	cmd, cmdArgs := rest[0], rest[1:]

	store, err := a.newStore(*addr, *authKey, a.logger)
	if err != nil {
		return fmt.Errorf("connecting to daemon: %w", err)
	}

	s := a.newSession(store)
	defer func() {
		if cerr := s.close(ctx); cerr != nil {
			fmt.Fprintf(a.errw, "warning: %v\n", cerr)
		}
	}()

	switch cmd {
	case "status":
		return a.cmdStatus(ctx, s)
	case "profiles":
		return a.cmdProfiles(ctx, s)
	case "get":
		return a.cmdGet(ctx, s, cmdArgs)
	case "set":
		return a.cmdSet(ctx, s, cmdArgs)
	case "rm":
		return a.cmdRemove(ctx, s, cmdArgs)
	case "export":
		return a.cmdExport(ctx, s, cmdArgs)
	case "import":
		return a.cmdImport(ctx, s, cmdArgs)
	case "backup":
		return a.cmdBackup(ctx, s, cmdArgs)
	case "rotate-key":
		return a.cmdRotateKey(ctx, s)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintf(a.errw, `Usage: %s [-a addr] [-k auth-key] <command> [args]

Commands:
  status                      daemon, storage and config health
  profiles                    list credential profiles
  get <key>                   print a raw stored value
  set <key> <json>            store a raw JSON value
  rm <key>...                 remove keys
  export [-o file] [-protect] export the configuration
  import [-i file] [-protect] import a configuration
  backup create               create a backup now
  backup list                 list stored backups
  backup restore <key>        restore a backup
  rotate-key                  rotate the encryption key

Environment: LARKSTORED_ADDR, LARKSTORED_AUTH_KEY
`, clientName)
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
