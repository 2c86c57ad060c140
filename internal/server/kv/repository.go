package kv

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pressly/goose/v3"

	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/server/kv/migrations"
)

// Usage aggregates size accounting for one area. BytesInUse counts key and
// value bytes the same way hostkv.Memory does.
type Usage struct {
	BytesInUse int64
	KeyCount   int64
}

// Repository is the SQL surface backing persistent areas, one implementation
// per dialect. Mutations report the previous value so the change feed can
// carry old/new pairs. Methods run against whatever DBTX the repository was
// constructed with; multi-statement mutations are only atomic inside
// dbx.WithTx.
type Repository interface {
	// Get returns the stored values for the keys that exist. Missing keys
	// are absent from the result.
	Get(ctx context.Context, area hostkv.Area, keys []string) (map[string]json.RawMessage, error)

	// List returns every item in the area.
	List(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error)

	// Upsert stores value under key and reports the value it replaced.
	Upsert(ctx context.Context, area hostkv.Area, key string, value json.RawMessage) (prev json.RawMessage, found bool, err error)

	// Remove deletes key and reports the removed value.
	Remove(ctx context.Context, area hostkv.Area, key string) (prev json.RawMessage, found bool, err error)

	// Clear deletes the whole area and returns the removed items.
	Clear(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error)

	// Stats reports byte usage and key count for the area.
	Stats(ctx context.Context, area hostkv.Area) (Usage, error)
}

// Dialect selects the goose dialect and the migration set RunMigrations
// applies.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema for the dialect to db.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(d)); err != nil {
		return err
	}

	dir := "sqlite"
	if d == DialectPostgres {
		dir = "postgres"
	}

	return gooseUpContext(ctx, db, dir)
}
