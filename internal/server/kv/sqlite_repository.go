package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/larkstore/larkstore/internal/dbx"
	"github.com/larkstore/larkstore/internal/hostkv"
)

// SQLiteRepository implements Repository over SQLite. The blank import
// registers the "sqlite" driver for callers of sql.Open.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository constructs a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, area hostkv.Area, keys []string) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys)+1)
	args = append(args, string(area))
	for _, k := range keys {
		args = append(args, k)
	}

	query := fmt.Sprintf(`SELECT key, value FROM kv_items WHERE area = ? AND key IN (%s)`, placeholders)
	return r.collect(ctx, query, args...)
}

func (r *SQLiteRepository) List(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	return r.collect(ctx, `SELECT key, value FROM kv_items WHERE area = ?`, string(area))
}

func (r *SQLiteRepository) Upsert(ctx context.Context, area hostkv.Area, key string, value json.RawMessage) (json.RawMessage, bool, error) {
	prev, found, err := r.lookup(ctx, area, key)
	if err != nil {
		return nil, false, err
	}

	query := `
		INSERT INTO kv_items (area, key, value) VALUES (?, ?, ?)
		ON CONFLICT (area, key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := r.db.ExecContext(ctx, query, string(area), key, []byte(value)); err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return prev, found, nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, area hostkv.Area, key string) (json.RawMessage, bool, error) {
	prev, found, err := r.lookup(ctx, area, key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_items WHERE area = ? AND key = ?`, string(area), key); err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return prev, true, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	removed, err := r.List(ctx, area)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_items WHERE area = ?`, string(area)); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return removed, nil
}

func (r *SQLiteRepository) Stats(ctx context.Context, area hostkv.Area) (Usage, error) {
	query := `
		SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(value)), 0), COUNT(*)
		FROM kv_items WHERE area = ?
	`
	var u Usage
	if err := r.db.QueryRowContext(ctx, query, string(area)).Scan(&u.BytesInUse, &u.KeyCount); err != nil {
		return Usage{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) lookup(ctx context.Context, area hostkv.Area, key string) (json.RawMessage, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_items WHERE area = ? AND key = ?`, string(area), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) collect(ctx context.Context, query string, args ...any) (map[string]json.RawMessage, error) {
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
