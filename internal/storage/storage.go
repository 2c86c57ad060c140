// Package storage implements the persistence engine: a read cache with TTL
// expiry, a debounced batching write queue and change-notification fan-out
// over a hostkv.Store area.
//
// Reads prefer the cache and fall through to the host. Writes update the
// cache synchronously, so a Get right after a Set observes the write even
// though the host write is still queued. A background task drains the queue
// at a fixed interval, coalescing writes per key; Clear and Flush bypass it.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/vault"
)

const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultFlushInterval = 200 * time.Millisecond
	DefaultMaxPending    = 1024
)

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("storage manager closed")

	// ErrNoVault is returned when encryption is requested but the manager
	// was built without a vault.
	ErrNoVault = errors.New("no vault configured")
)

type managerState int

const (
	stateUninitialized managerState = iota
	stateInitializing
	stateReady
	stateClosed
)

// Options tune a Manager. Zero values take the defaults above.
type Options struct {
	Area          hostkv.Area
	CacheTTL      time.Duration
	FlushInterval time.Duration
	MaxPending    int
}

// Stats reports host usage plus engine-local gauges.
type Stats struct {
	BytesInUse    int64
	QuotaBytes    int64
	UsagePercent  float64
	KeyCount      int64
	CacheEntries  int
	PendingWrites int
}

// Manager is the persistence engine over one area of a host store.
//
// A Manager is safe for concurrent use. It starts Uninitialized; the first
// operation (or an explicit Initialize) moves it through Initializing to
// Ready, and concurrent first calls share that one initialization.
type Manager struct {
	store  hostkv.Store
	vault  *vault.Manager
	logger logging.Logger

	area          hostkv.Area
	cacheTTL      time.Duration
	flushInterval time.Duration
	maxPending    int

	cache *gocache.Cache
	queue *writeQueue
	hub   *listenerHub

	mu        sync.Mutex
	state     managerState
	ready     chan struct{}
	initErr   error
	subCancel func()
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewManager builds an engine over store. vlt may be nil; then WithEncryption
// writes are rejected. The manager is usable immediately, initialization
// happens lazily on first use.
func NewManager(store hostkv.Store, vlt *vault.Manager, logger logging.Logger, opts Options) *Manager {
	if opts.Area == "" {
		opts.Area = hostkv.AreaLocal
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = DefaultFlushInterval
	}
	if opts.MaxPending <= 0 {
		opts.MaxPending = DefaultMaxPending
	}

	return &Manager{
		store:         store,
		vault:         vlt,
		logger:        logger.With("module", "storage", "area", string(opts.Area)),
		area:          opts.Area,
		cacheTTL:      opts.CacheTTL,
		flushInterval: opts.FlushInterval,
		maxPending:    opts.MaxPending,
		cache:         gocache.New(opts.CacheTTL, opts.CacheTTL),
		queue:         newWriteQueue(),
		hub:           newListenerHub(),
	}
}

// Initialize brings the manager to Ready: verifies the host is reachable,
// subscribes to the change feed and starts the flush loop. Idempotent;
// concurrent callers block until the one initialization finishes.
func (m *Manager) Initialize(ctx context.Context) error {
	return m.ensureReady(ctx)
}

func (m *Manager) ensureReady(ctx context.Context) error {
	for {
		m.mu.Lock()
		switch m.state {
		case stateReady:
			m.mu.Unlock()
			return nil

		case stateClosed:
			m.mu.Unlock()
			return ErrClosed

		case stateInitializing:
			ready := m.ready
			m.mu.Unlock()
			select {
			case <-ready:
				m.mu.Lock()
				if m.state == stateReady {
					m.mu.Unlock()
					return nil
				}
				err := m.initErr
				m.mu.Unlock()
				return err
			case <-ctx.Done():
				return ctx.Err()
			}

		case stateUninitialized:
			m.state = stateInitializing
			m.ready = make(chan struct{})
			ready := m.ready
			m.mu.Unlock()

			err := m.initialize(ctx)

			m.mu.Lock()
			if err != nil {
				// Back to Uninitialized so a later call can retry.
				m.state = stateUninitialized
				m.initErr = err
			} else if m.state == stateInitializing {
				m.state = stateReady
				m.initErr = nil
			}
			close(ready)
			m.mu.Unlock()
			return err
		}
	}
}

func (m *Manager) initialize(ctx context.Context) error {
	if _, err := m.store.Stats(ctx, m.area); err != nil {
		return fmt.Errorf("host store not reachable: %w", err)
	}

	// Subscription and workers outlive the initializing caller's ctx.
	feed, cancel, err := m.store.Subscribe(context.Background())
	if err != nil {
		return fmt.Errorf("subscribing to change feed: %w", err)
	}

	m.subCancel = cancel
	m.stop = make(chan struct{})

	m.wg.Add(2)
	go m.dispatchLoop(feed)
	go m.flushLoop()

	m.logger.Debug(ctx, "storage engine ready")
	return nil
}

// Close flushes pending writes, stops the workers and detaches from the
// store. The store itself is not closed; the caller owns it.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.state == stateClosed {
		m.mu.Unlock()
		return nil
	}
	wasReady := m.state == stateReady
	m.state = stateClosed
	m.mu.Unlock()

	if !wasReady {
		return nil
	}

	err := m.flushOnce(ctx)

	close(m.stop)
	m.subCancel()
	m.wg.Wait()
	return err
}

// Set marshals value, updates the cache immediately and queues the host
// write. With WithEncryption the value is sealed by the vault first; a vault
// failure fails the write, plaintext is never queued as a fallback.
func (m *Manager) Set(ctx context.Context, key string, value any, opts ...SetOption) error {
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	o := newSetOptions(opts)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	if o.encrypt {
		if m.vault == nil {
			return ErrNoVault
		}
		envelope, err := m.vault.Encrypt(ctx, string(raw))
		if err != nil {
			return fmt.Errorf("encrypting %s: %w", key, err)
		}
		raw, err = json.Marshal(envelope)
		if err != nil {
			return fmt.Errorf("marshaling envelope for %s: %w", key, err)
		}
	}

	m.cache.Set(key, json.RawMessage(raw), gocache.DefaultExpiration)

	if m.queue.put(key, queueOp{value: raw}) >= m.maxPending {
		return m.flushOnce(ctx)
	}
	return nil
}

// Get returns the value for key, preferring a fresh cache entry. A miss
// reads through to the host and refreshes the cache. found is false when
// the key does not exist.
func (m *Manager) Get(ctx context.Context, key string, opts ...GetOption) (value json.RawMessage, found bool, err error) {
	if err := m.ensureReady(ctx); err != nil {
		return nil, false, err
	}
	o := newGetOptions(opts)

	if cached, ok := m.cache.Get(key); ok {
		return m.finishGet(ctx, cached.(json.RawMessage), o)
	}

	// A queued op is newer than anything the host has.
	if op, ok := m.queue.peek(key); ok {
		if op.remove {
			return nil, false, nil
		}
		m.cache.Set(key, op.value, gocache.DefaultExpiration)
		return m.finishGet(ctx, op.value, o)
	}

	items, err := m.store.Get(ctx, m.area, []string{key})
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	raw, ok := items[key]
	if !ok {
		return nil, false, nil
	}
	m.cache.Set(key, raw, gocache.DefaultExpiration)
	return m.finishGet(ctx, raw, o)
}

// GetMany resolves several keys with a single host round trip for the
// cache misses. Missing keys are absent from the result.
func (m *Manager) GetMany(ctx context.Context, keys []string, opts ...GetOption) (map[string]json.RawMessage, error) {
	if err := m.ensureReady(ctx); err != nil {
		return nil, err
	}
	o := newGetOptions(opts)

	out := make(map[string]json.RawMessage, len(keys))
	var misses []string
	for _, key := range keys {
		if cached, ok := m.cache.Get(key); ok {
			out[key] = cached.(json.RawMessage)
			continue
		}
		if op, ok := m.queue.peek(key); ok {
			if !op.remove {
				out[key] = op.value
			}
			continue
		}
		misses = append(misses, key)
	}

	if len(misses) > 0 {
		items, err := m.store.Get(ctx, m.area, misses)
		if err != nil {
			return nil, fmt.Errorf("reading %d keys: %w", len(misses), err)
		}
		for key, raw := range items {
			m.cache.Set(key, raw, gocache.DefaultExpiration)
			out[key] = raw
		}
	}

	for key, raw := range out {
		v, _, err := m.finishGet(ctx, raw, o)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

// GetWithDefault is the degrading read path: any failure is logged and def
// returned, so callers with a sensible fallback never see host errors.
func (m *Manager) GetWithDefault(ctx context.Context, key string, def json.RawMessage, opts ...GetOption) json.RawMessage {
	value, found, err := m.Get(ctx, key, opts...)
	if err != nil {
		m.logger.Warn(ctx, "read failed, using default", "key", key, "error", err)
		return def
	}
	if !found {
		return def
	}
	return value
}

// finishGet applies the read options to a raw stored value.
func (m *Manager) finishGet(ctx context.Context, raw json.RawMessage, o getOptions) (json.RawMessage, bool, error) {
	if !o.decrypt {
		return raw, true, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || !vault.IsEncrypted(s) {
		// Stored before encryption was enabled; hand back as-is.
		return raw, true, nil
	}
	if m.vault == nil {
		return nil, false, ErrNoVault
	}
	plaintext, err := m.vault.Decrypt(ctx, s)
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(plaintext), true, nil
}

// Remove evicts keys from the cache and queues tombstones.
func (m *Manager) Remove(ctx context.Context, keys ...string) error {
	if err := m.ensureReady(ctx); err != nil {
		return err
	}

	overflow := false
	for _, key := range keys {
		m.cache.Delete(key)
		if m.queue.put(key, queueOp{remove: true}) >= m.maxPending {
			overflow = true
		}
	}
	if overflow {
		return m.flushOnce(ctx)
	}
	return nil
}

// Clear empties the area immediately, bypassing the write queue. Queued
// writes are discarded first: a Set enqueued before Clear never resurfaces
// afterwards.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.ensureReady(ctx); err != nil {
		return err
	}

	m.queue.reset()
	m.cache.Flush()
	if err := m.store.Clear(ctx, m.area); err != nil {
		return fmt.Errorf("clearing area: %w", err)
	}
	return nil
}

// Flush drains the write queue now and reports the host error, if any.
func (m *Manager) Flush(ctx context.Context) error {
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	return m.flushOnce(ctx)
}

func (m *Manager) flushOnce(ctx context.Context) error {
	sets, removes := m.queue.drain()
	if len(sets) == 0 && len(removes) == 0 {
		return nil
	}

	var errs []error
	if len(sets) > 0 {
		if err := m.store.Set(ctx, m.area, sets); err != nil {
			m.queue.restore(sets, nil)
			errs = append(errs, fmt.Errorf("writing %d keys: %w", len(sets), err))
		}
	}
	if len(removes) > 0 {
		if err := m.store.Remove(ctx, m.area, removes); err != nil {
			m.queue.restore(nil, removes)
			errs = append(errs, fmt.Errorf("removing %d keys: %w", len(removes), err))
		}
	}
	return errors.Join(errs...)
}

// Stats combines host byte accounting with engine gauges.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	if err := m.ensureReady(ctx); err != nil {
		return Stats{}, err
	}

	hs, err := m.store.Stats(ctx, m.area)
	if err != nil {
		return Stats{}, fmt.Errorf("host stats: %w", err)
	}

	s := Stats{
		BytesInUse:    hs.BytesInUse,
		QuotaBytes:    hs.QuotaBytes,
		KeyCount:      hs.KeyCount,
		CacheEntries:  m.cache.ItemCount(),
		PendingWrites: m.queue.len(),
	}
	if hs.QuotaBytes > 0 {
		s.UsagePercent = float64(hs.BytesInUse) / float64(hs.QuotaBytes) * 100
	}
	return s, nil
}

// AddListener registers fn for changes to one key. The returned func
// unregisters it.
func (m *Manager) AddListener(key string, fn ListenerFunc) func() {
	return m.hub.addKey(key, fn)
}

// AddWildcardListener registers fn for every change in the area.
func (m *Manager) AddWildcardListener(fn ListenerFunc) func() {
	return m.hub.addWildcard(fn)
}

// dispatchLoop applies host change batches to the cache and fans them out.
func (m *Manager) dispatchLoop(feed <-chan []hostkv.Change) {
	defer m.wg.Done()
	for {
		select {
		case <-m.stop:
			return
		case batch, ok := <-feed:
			if !ok {
				return
			}
			for _, change := range batch {
				if change.Area != m.area {
					continue
				}
				if change.NewValue == nil {
					m.cache.Delete(change.Key)
				} else {
					m.cache.Set(change.Key, change.NewValue, gocache.DefaultExpiration)
				}
				m.hub.dispatch(m.logger, change)
			}
		}
	}
}

// flushLoop drains the queue at the configured interval. Failed batches
// stay queued; the error is logged and the next tick retries.
func (m *Manager) flushLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			if err := m.flushOnce(context.Background()); err != nil {
				m.logger.Error(context.Background(), "background flush failed", "error", err)
			}
		}
	}
}
