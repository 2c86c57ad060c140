// Package kv persists host store areas in SQL. Repository is the dialect
// surface (SQLite and PostgreSQL), Service layers quota accounting and the
// change feed on top and implements hostkv.Store, so the daemon serves the
// persistent areas from a database the same way embedded setups serve them
// from memory.
package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/dbx"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
)

// subscriber channels buffer this many batches before dropping.
const subscriberBuffer = 64

// Service implements hostkv.Store over a Repository. Mutations run inside a
// transaction and are serialized, so subscribers observe change batches in
// commit order. Reads go straight to the database.
//
// The Service does not own the *sql.DB; the caller closes it after Close.
type Service struct {
	db     *sql.DB
	repo   func(dbx.DBTX) Repository
	logger logging.Logger

	// quota bounds hostkv.AreaLocal, in bytes. Zero means unbounded.
	quota int64

	mu     sync.Mutex
	subs   map[string]chan []hostkv.Change
	closed bool
}

// NewService wires a Service over db. repo constructs a Repository for the
// dialect in use, bound to the DBTX it is given.
func NewService(db *sql.DB, repo func(dbx.DBTX) Repository, logger logging.Logger, quotaBytes int64) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		logger: logger.With("module", "kv"),
		quota:  quotaBytes,
		subs:   make(map[string]chan []hostkv.Change),
	}
}

func (s *Service) Get(ctx context.Context, area hostkv.Area, keys []string) (map[string]json.RawMessage, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo(s.db).Get(ctx, area, keys)
}

func (s *Service) List(ctx context.Context, area hostkv.Area) (map[string]json.RawMessage, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo(s.db).List(ctx, area)
}

func (s *Service) Set(ctx context.Context, area hostkv.Area, items map[string]json.RawMessage) error {
	if len(items) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.ErrHostUnavailable
	}

	var batch []hostkv.Change
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		if s.quota > 0 && area == hostkv.AreaLocal {
			if err := s.checkQuota(ctx, repo, area, items); err != nil {
				return err
			}
		}

		batch = make([]hostkv.Change, 0, len(items))
		for k, v := range items {
			prev, _, err := repo.Upsert(ctx, area, k, v)
			if err != nil {
				return err
			}
			batch = append(batch, hostkv.Change{Area: area, Key: k, OldValue: prev, NewValue: v})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(batch)
	return nil
}

func (s *Service) Remove(ctx context.Context, area hostkv.Area, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.ErrHostUnavailable
	}

	var batch []hostkv.Change
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		for _, k := range keys {
			prev, found, err := repo.Remove(ctx, area, k)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			batch = append(batch, hostkv.Change{Area: area, Key: k, OldValue: prev})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(batch)
	return nil
}

func (s *Service) Clear(ctx context.Context, area hostkv.Area) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.ErrHostUnavailable
	}

	var batch []hostkv.Change
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		removed, err := s.repo(tx).Clear(ctx, area)
		if err != nil {
			return err
		}

		batch = make([]hostkv.Change, 0, len(removed))
		for k, v := range removed {
			batch = append(batch, hostkv.Change{Area: area, Key: k, OldValue: v})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(batch)
	return nil
}

func (s *Service) Stats(ctx context.Context, area hostkv.Area) (hostkv.Stats, error) {
	if err := s.check(); err != nil {
		return hostkv.Stats{}, err
	}

	u, err := s.repo(s.db).Stats(ctx, area)
	if err != nil {
		return hostkv.Stats{}, err
	}

	stats := hostkv.Stats{BytesInUse: u.BytesInUse, KeyCount: u.KeyCount}
	if area == hostkv.AreaLocal {
		stats.QuotaBytes = s.quota
	}
	return stats, nil
}

func (s *Service) Subscribe(ctx context.Context) (<-chan []hostkv.Change, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, common.ErrHostUnavailable
	}

	id := uuid.NewString()
	ch := make(chan []hostkv.Change, subscriberBuffer)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel, nil
}

// Close detaches subscribers and rejects further calls. The database handle
// stays open.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	return nil
}

// checkQuota projects area usage after applying items and fails the write
// when it would exceed the quota. Runs inside the mutation transaction, so
// the projection cannot race another writer.
func (s *Service) checkQuota(ctx context.Context, repo Repository, area hostkv.Area, items map[string]json.RawMessage) error {
	u, err := repo.Stats(ctx, area)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	existing, err := repo.Get(ctx, area, keys)
	if err != nil {
		return err
	}

	size := u.BytesInUse
	for k, v := range items {
		if old, ok := existing[k]; ok {
			size -= int64(len(k) + len(old))
		}
		size += int64(len(k) + len(v))
	}
	if size > s.quota {
		return fmt.Errorf("%w: %d of %d bytes", common.ErrQuotaExceeded, size, s.quota)
	}
	return nil
}

func (s *Service) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return common.ErrHostUnavailable
	}
	return nil
}

// publish fans a batch out to all subscribers. Called with mu held so
// batches arrive in commit order; sends never block, a full subscriber
// loses the batch.
func (s *Service) publish(batch []hostkv.Change) {
	if len(batch) == 0 {
		return
	}
	for id, ch := range s.subs {
		select {
		case ch <- batch:
		default:
			s.logger.Warn(context.Background(), "subscriber lagging, dropping change batch", "subscriber", id, "changes", len(batch))
		}
	}
}
