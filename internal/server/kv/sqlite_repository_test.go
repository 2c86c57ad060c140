package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkstore/larkstore/internal/dbx"
	"github.com/larkstore/larkstore/internal/hostkv"
)

var dbSeq atomic.Int64

// setupSQLite opens a fresh in-memory database and applies the migrations.
// cache=shared with a single connection keeps the database alive for the
// whole test.
func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:kvtest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db, DialectSQLite))
	return db
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestSQLiteRepository_UpsertLifecycle(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	prev, found, err := repo.Upsert(ctx, hostkv.AreaLocal, "storageConfig", raw(`{"v":1}`))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, prev)

	got, err := repo.Get(ctx, hostkv.AreaLocal, []string{"storageConfig"})
	require.NoError(t, err)
	assert.Equal(t, raw(`{"v":1}`), got["storageConfig"])

	prev, found, err = repo.Upsert(ctx, hostkv.AreaLocal, "storageConfig", raw(`{"v":2}`))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, raw(`{"v":1}`), prev)

	prev, found, err = repo.Remove(ctx, hostkv.AreaLocal, "storageConfig")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, raw(`{"v":2}`), prev)

	_, found, err = repo.Remove(ctx, hostkv.AreaLocal, "storageConfig")
	require.NoError(t, err)
	assert.False(t, found)

	got, err = repo.Get(ctx, hostkv.AreaLocal, []string{"storageConfig"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteRepository_GetReturnsOnlyExisting(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, hostkv.AreaLocal, "a", raw(`1`))
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, hostkv.AreaLocal, "b", raw(`2`))
	require.NoError(t, err)

	got, err := repo.Get(ctx, hostkv.AreaLocal, []string{"a", "b", "missing"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, raw(`1`), got["a"])
	assert.Equal(t, raw(`2`), got["b"])

	got, err = repo.Get(ctx, hostkv.AreaLocal, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteRepository_AreasAreIsolated(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, hostkv.AreaLocal, "k", raw(`"local"`))
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, hostkv.AreaSession, "k", raw(`"session"`))
	require.NoError(t, err)

	local, err := repo.List(ctx, hostkv.AreaLocal)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{"k": raw(`"local"`)}, local)

	removed, err := repo.Clear(ctx, hostkv.AreaSession)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{"k": raw(`"session"`)}, removed)

	local, err = repo.List(ctx, hostkv.AreaLocal)
	require.NoError(t, err)
	assert.Len(t, local, 1, "clearing one area must not touch another")
}

func TestSQLiteRepository_Stats(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := repo.Stats(ctx, hostkv.AreaLocal)
	require.NoError(t, err)
	assert.Equal(t, Usage{}, u)

	_, _, err = repo.Upsert(ctx, hostkv.AreaLocal, "ab", raw(`"xyz"`))
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, hostkv.AreaLocal, "c", raw(`1`))
	require.NoError(t, err)

	u, err = repo.Stats(ctx, hostkv.AreaLocal)
	require.NoError(t, err)
	assert.Equal(t, int64(len("ab")+len(`"xyz"`)+len("c")+len(`1`)), u.BytesInUse)
	assert.Equal(t, int64(2), u.KeyCount)
}

func TestSQLiteRepository_RollbackLeavesNoRow(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, _, err := NewSQLiteRepository(tx).Upsert(ctx, hostkv.AreaLocal, "k", raw(`1`)); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	got, err := NewSQLiteRepository(db).List(ctx, hostkv.AreaLocal)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupSQLite(t)

	// setupSQLite already migrated once.
	require.NoError(t, RunMigrations(context.Background(), db, DialectSQLite))
}
