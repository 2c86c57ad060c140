package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/larkstore/larkstore/internal/dbx"
	"github.com/larkstore/larkstore/internal/hostkv"
)

// PostgresRepository implements Repository over PostgreSQL via the pgx
// database/sql driver.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, area hostkv.Area, keys []string) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	return r.collect(ctx, `SELECT key, value FROM kv_items WHERE area = $1 AND key = ANY($2)`, string(area), keys)
}

func (r *PostgresRepository) List(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	return r.collect(ctx, `SELECT key, value FROM kv_items WHERE area = $1`, string(area))
}

// Upsert inserts or replaces in a single statement; the CTE reads the
// previous value from the snapshot the upsert runs against, and the
// data-modifying CTE executes whether or not a previous row exists.
func (r *PostgresRepository) Upsert(ctx context.Context, area hostkv.Area, key string, value json.RawMessage) (json.RawMessage, bool, error) {
	query := `
		WITH old AS (
			SELECT value FROM kv_items WHERE area = $1 AND key = $2
		), up AS (
			INSERT INTO kv_items (area, key, value) VALUES ($1, $2, $3)
			ON CONFLICT (area, key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		)
		SELECT value FROM old;
	`
	var prev []byte
	err := r.db.QueryRowContext(ctx, query, string(area), key, []byte(value)).Scan(&prev)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return prev, true, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, area hostkv.Area, key string) (json.RawMessage, bool, error) {
	var prev []byte
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM kv_items WHERE area = $1 AND key = $2 RETURNING value`,
		string(area), key).Scan(&prev)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return prev, true, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	return r.collect(ctx, `DELETE FROM kv_items WHERE area = $1 RETURNING key, value`, string(area))
}

func (r *PostgresRepository) Stats(ctx context.Context, area hostkv.Area) (Usage, error) {
	query := `
		SELECT COALESCE(SUM(OCTET_LENGTH(key) + OCTET_LENGTH(value)), 0), COUNT(*)
		FROM kv_items WHERE area = $1
	`
	var u Usage
	if err := r.db.QueryRowContext(ctx, query, string(area)).Scan(&u.BytesInUse, &u.KeyCount); err != nil {
		return Usage{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) collect(ctx context.Context, query string, args ...any) (map[string]json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]json.RawMessage)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
