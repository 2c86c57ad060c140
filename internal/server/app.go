// Package server wires the larkstored daemon: the backend store for the
// persistent area, the in-memory session area, the gRPC HostStore surface
// and the optional auto-backup scheduler.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/larkstore/larkstore/internal/backup"
	storecfg "github.com/larkstore/larkstore/internal/config"
	"github.com/larkstore/larkstore/internal/dbx"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/server/config"
	gs "github.com/larkstore/larkstore/internal/server/grpc"
	"github.com/larkstore/larkstore/internal/server/kv"
	"github.com/larkstore/larkstore/internal/storage"
	"github.com/larkstore/larkstore/internal/vault"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB // nil for the memory backend
	local   hostkv.Store
	session *hostkv.Memory
}

// NewApp opens the configured backend, applies migrations and prepares the
// area stores. The session area always lives in daemon memory.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	app := &App{
		config:  cfg,
		logger:  logger.With("module", "app"),
		session: hostkv.NewMemory(),
	}

	switch cfg.Backend {
	case config.BackendMemory:
		m := hostkv.NewMemory()
		m.SetQuota(hostkv.AreaLocal, cfg.LocalQuotaBytes)
		app.local = m

	case config.BackendSQLite:
		db, err := sql.Open("sqlite", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		if err := kv.RunMigrations(ctx, db, kv.DialectSQLite); err != nil {
			return nil, fmt.Errorf("migrating sqlite database: %w", err)
		}
		app.db = db
		app.local = kv.NewService(db, func(tx dbx.DBTX) kv.Repository { return kv.NewSQLiteRepository(tx) }, logger, cfg.LocalQuotaBytes)

	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres database: %w", err)
		}
		if err := kv.RunMigrations(ctx, db, kv.DialectPostgres); err != nil {
			return nil, fmt.Errorf("migrating postgres database: %w", err)
		}
		app.db = db
		app.local = kv.NewService(db, func(tx dbx.DBTX) kv.Repository { return kv.NewPostgresRepository(tx) }, logger, cfg.LocalQuotaBytes)

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancel context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.Addr, app.logger, app.local, app.session, app.config.AuthKey, app.config.SessionTTL)
	if err != nil {
		app.logger.Error(ctx, "grpc server init failed", "error", err)
		cancel()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server stopped", "error", err)
		cancel()
	}
}

// startScheduler runs the manager stack in-process over the local area and
// schedules backups per the persisted backup policy. Returns a stop func.
func (app *App) startScheduler(ctx context.Context) (func(), error) {
	vlt := vault.NewManager(app.local, hostkv.AreaLocal, app.logger)
	engine := storage.NewManager(app.local, vlt, app.logger, storage.Options{})
	cfgMgr := storecfg.NewManager(engine, vlt, app.logger)

	if err := cfgMgr.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initializing config manager: %w", err)
	}

	stopManagers := func() {
		cfgMgr.Close()
		if err := engine.Close(context.Background()); err != nil {
			app.logger.Warn(context.Background(), "closing engine", "error", err)
		}
	}

	policy := cfgMgr.Config(ctx).App
	if !policy.AutoBackup {
		app.logger.Info(ctx, "auto-backup disabled by config")
		return stopManagers, nil
	}

	var sink backup.Sink
	if app.config.S3Bucket != "" {
		s3, err := backup.NewS3Sink(ctx, backup.S3Options{
			Bucket:    app.config.S3Bucket,
			Region:    app.config.S3Region,
			Endpoint:  app.config.S3Endpoint,
			AccessKey: app.config.S3AccessKey,
			SecretKey: app.config.S3SecretKey,
		})
		if err != nil {
			stopManagers()
			return nil, fmt.Errorf("initializing s3 sink: %w", err)
		}
		sink = s3
	}

	svc := backup.NewService(app.local, engine, vlt, app.logger, backup.Options{
		Retain: policy.MaxBackups,
		Sink:   sink,
	})

	sched := backup.NewScheduler(svc, app.logger)
	interval := time.Duration(policy.BackupIntervalHours) * time.Hour
	if err := sched.Start(interval); err != nil {
		stopManagers()
		return nil, err
	}

	return func() {
		sched.Stop()
		stopManagers()
	}, nil
}

// Run serves until ctx is cancelled or a signal arrives, then shuts down
// in dependency order: scheduler, gRPC, stores, database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "starting larkstored", "addr", app.config.Addr, "backend", app.config.Backend)

	app.initSignalHandler(cancel)

	var stopScheduler func()
	if app.config.EnableScheduler {
		stop, err := app.startScheduler(ctx)
		if err != nil {
			// the daemon can still serve without scheduled backups
			app.logger.Error(ctx, "backup scheduler not started", "error", err)
		} else {
			stopScheduler = stop
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancel)
	}()

	wg.Wait()

	if stopScheduler != nil {
		stopScheduler()
	}
	if err := app.local.Close(); err != nil {
		app.logger.Warn(ctx, "closing local store", "error", err)
	}
	if err := app.session.Close(); err != nil {
		app.logger.Warn(ctx, "closing session store", "error", err)
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}

	app.logger.Info(ctx, "larkstored stopped")
	return nil
}
