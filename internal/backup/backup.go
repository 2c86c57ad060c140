// Package backup snapshots the persisted area into checksummed documents
// stored alongside the data, and restores them through the storage engine.
//
// Backups never include the vault key document: key material stays in the
// store only. Restoring onto an install with a different key leaves
// encrypted fields unreadable; the field-level decrypt tolerance upstream
// turns that into re-entering secrets, not data loss.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/cryptox"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/storage"
	"github.com/larkstore/larkstore/internal/vault"
)

// DefaultRetain is how many backups are kept before the oldest are pruned.
const DefaultRetain = 5

// documentVersion is the backup format version.
const documentVersion = 1

// ErrIntegrity means a backup document is malformed or its checksum does
// not match its data. Restore refuses to touch the store in that case.
var ErrIntegrity = errors.New("backup integrity check failed")

// Document is the persisted form of one backup.
type Document struct {
	Version   int                        `json:"version"`
	Timestamp time.Time                  `json:"timestamp"`
	Checksum  string                     `json:"checksum"`
	Encrypted bool                       `json:"encrypted"`
	Data      map[string]json.RawMessage `json:"data"`
}

// Info describes one stored backup.
type Info struct {
	Key       string
	Timestamp time.Time
	Encrypted bool
	Keys      int
}

// Options tune a Service. Zero values take defaults.
type Options struct {
	Area   hostkv.Area
	Retain int
	Sink   Sink // optional offsite copy
}

// Service creates, lists and restores backups of one area.
type Service struct {
	store  hostkv.Store
	engine *storage.Manager
	vault  *vault.Manager
	logger logging.Logger

	area   hostkv.Area
	retain int
	sink   Sink

	now func() time.Time
}

// NewService wires a backup service. vlt may be nil when encryption is
// disabled; it only feeds the Encrypted flag of new documents.
func NewService(store hostkv.Store, engine *storage.Manager, vlt *vault.Manager, logger logging.Logger, opts Options) *Service {
	if opts.Area == "" {
		opts.Area = hostkv.AreaLocal
	}
	if opts.Retain <= 0 {
		opts.Retain = DefaultRetain
	}
	return &Service{
		store:  store,
		engine: engine,
		vault:  vlt,
		logger: logger.With("module", "backup"),
		area:   opts.Area,
		retain: opts.Retain,
		sink:   opts.Sink,
		now:    time.Now,
	}
}

// Create snapshots every payload key of the area into a new backup
// document, persists it immediately (no write batching: a backup that can
// be lost in a crash is not a backup) and prunes old ones past the
// retention limit.
func (s *Service) Create(ctx context.Context) (Info, error) {
	// Pending engine writes belong in the snapshot.
	if err := s.engine.Flush(ctx); err != nil {
		return Info{}, fmt.Errorf("flushing before backup: %w", err)
	}

	items, err := s.store.List(ctx, s.area)
	if err != nil {
		return Info{}, fmt.Errorf("reading area: %w", err)
	}

	data := make(map[string]json.RawMessage, len(items))
	for key, value := range items {
		if isExcluded(key) {
			continue
		}
		data[key] = value
	}

	canonical, err := json.Marshal(data)
	if err != nil {
		return Info{}, fmt.Errorf("serializing snapshot: %w", err)
	}

	ts := s.now().UTC()
	doc := Document{
		Version:   documentVersion,
		Timestamp: ts,
		Checksum:  cryptox.Checksum(canonical),
		Encrypted: s.vault != nil,
		Data:      data,
	}
	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return Info{}, fmt.Errorf("serializing backup: %w", err)
	}

	key := common.BackupKeyPrefix + strconv.FormatInt(ts.UnixMilli(), 10)
	err = s.store.Set(ctx, s.area, map[string]json.RawMessage{key: rawDoc})
	if err != nil {
		return Info{}, fmt.Errorf("persisting backup: %w", err)
	}
	s.logger.Info(ctx, "backup created", "key", key, "keys", len(data))

	if err := s.prune(ctx); err != nil {
		s.logger.Warn(ctx, "pruning old backups failed", "error", err)
	}

	if s.sink != nil {
		if err := s.sink.Put(ctx, key+".json", rawDoc); err != nil {
			// The local backup exists; the offsite copy is best effort.
			s.logger.Error(ctx, "offsite backup upload failed", "key", key, "error", err)
		}
	}

	return Info{Key: key, Timestamp: ts, Encrypted: doc.Encrypted, Keys: len(data)}, nil
}

// Restore verifies the named backup and replaces the area's payload with
// its data. Verification happens before any mutation: a corrupted backup
// leaves the store untouched.
//
// The replay goes through the engine's normal Set path, so the cache stays
// coherent and listeners observe the restored values once flushed.
func (s *Service) Restore(ctx context.Context, key string) error {
	items, err := s.store.Get(ctx, s.area, []string{key})
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	rawDoc, ok := items[key]
	if !ok {
		return fmt.Errorf("restoring %s: %w", key, common.ErrNotFound)
	}

	doc := Document{}
	if err := json.Unmarshal(rawDoc, &doc); err != nil {
		return fmt.Errorf("%w: malformed document: %w", ErrIntegrity, err)
	}
	canonical, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	if sum := cryptox.Checksum(canonical); sum != doc.Checksum {
		return fmt.Errorf("%w: checksum mismatch for %s", ErrIntegrity, key)
	}

	// Drop payload keys the backup does not contain, then replay. Backups
	// and the key document survive a restore.
	current, err := s.store.List(ctx, s.area)
	if err != nil {
		return fmt.Errorf("reading area: %w", err)
	}
	var stale []string
	for k := range current {
		if isExcluded(k) {
			continue
		}
		if _, ok := doc.Data[k]; !ok {
			stale = append(stale, k)
		}
	}
	if len(stale) > 0 {
		if err := s.engine.Remove(ctx, stale...); err != nil {
			return fmt.Errorf("removing stale keys: %w", err)
		}
	}

	for k, v := range doc.Data {
		if err := s.engine.Set(ctx, k, v); err != nil {
			return fmt.Errorf("replaying %s: %w", k, err)
		}
	}
	if err := s.engine.Flush(ctx); err != nil {
		return fmt.Errorf("flushing restore: %w", err)
	}

	s.logger.Info(ctx, "backup restored", "key", key, "keys", len(doc.Data))
	return nil
}

// List returns stored backups, newest first. Entries that fail to parse
// are skipped; one bad document must not hide the rest.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	items, err := s.store.List(ctx, s.area)
	if err != nil {
		return nil, fmt.Errorf("reading area: %w", err)
	}

	infos := make([]Info, 0)
	for key, raw := range items {
		if !strings.HasPrefix(key, common.BackupKeyPrefix) {
			continue
		}
		doc := Document{}
		if err := json.Unmarshal(raw, &doc); err != nil || doc.Timestamp.IsZero() {
			s.logger.Debug(ctx, "skipping malformed backup", "key", key)
			continue
		}
		infos = append(infos, Info{
			Key:       key,
			Timestamp: doc.Timestamp,
			Encrypted: doc.Encrypted,
			Keys:      len(doc.Data),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// prune removes the oldest backups beyond the retention limit.
func (s *Service) prune(ctx context.Context) error {
	infos, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) <= s.retain {
		return nil
	}

	var victims []string
	for _, info := range infos[s.retain:] {
		victims = append(victims, info.Key)
	}
	if err := s.store.Remove(ctx, s.area, victims); err != nil {
		return err
	}
	s.logger.Debug(ctx, "pruned old backups", "count", len(victims))
	return nil
}

// isExcluded reports whether a key stays out of snapshots: other backups
// and the vault key document.
func isExcluded(key string) bool {
	return key == common.KeyEncryptionKey || strings.HasPrefix(key, common.BackupKeyPrefix)
}
