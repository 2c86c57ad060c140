package hostkv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/larkstore/larkstore/internal/common"
)

// subscriber channels buffer this many batches before dropping.
const subscriberBuffer = 64

// Memory is an in-process Store. The daemon uses it for the session area;
// tests and embedded (daemonless) setups use it for everything.
//
// Stored values never share backing arrays with callers: bytes are copied on
// both write and read.
type Memory struct {
	mu     sync.Mutex
	areas  map[Area]map[string]json.RawMessage
	quotas map[Area]int64
	subs   map[string]chan []Change
	closed bool
}

func NewMemory() *Memory {
	return &Memory{
		areas:  make(map[Area]map[string]json.RawMessage),
		quotas: make(map[Area]int64),
		subs:   make(map[string]chan []Change),
	}
}

// SetQuota bounds an area to the given byte budget. Zero means unbounded.
func (m *Memory) SetQuota(area Area, bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotas[area] = bytes
}

func (m *Memory) Get(ctx context.Context, area Area, keys []string) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, common.ErrHostUnavailable
	}

	items := m.areas[area]
	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := items[k]; ok {
			out[k] = cloneRaw(v)
		}
	}
	return out, nil
}

func (m *Memory) List(ctx context.Context, area Area) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, common.ErrHostUnavailable
	}

	items := m.areas[area]
	out := make(map[string]json.RawMessage, len(items))
	for k, v := range items {
		out[k] = cloneRaw(v)
	}
	return out, nil
}

func (m *Memory) Set(ctx context.Context, area Area, items map[string]json.RawMessage) error {
	if len(items) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrHostUnavailable
	}

	current, ok := m.areas[area]
	if !ok {
		current = make(map[string]json.RawMessage)
		m.areas[area] = current
	}

	if quota := m.quotas[area]; quota > 0 {
		size := areaBytes(current)
		for k, v := range items {
			if old, ok := current[k]; ok {
				size -= itemBytes(k, old)
			}
			size += itemBytes(k, v)
		}
		if size > quota {
			return fmt.Errorf("%w: %d of %d bytes", common.ErrQuotaExceeded, size, quota)
		}
	}

	batch := make([]Change, 0, len(items))
	for k, v := range items {
		old := current[k]
		stored := cloneRaw(v)
		current[k] = stored
		batch = append(batch, Change{Area: area, Key: k, OldValue: old, NewValue: cloneRaw(stored)})
	}
	m.publish(batch)
	return nil
}

func (m *Memory) Remove(ctx context.Context, area Area, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrHostUnavailable
	}

	current := m.areas[area]
	var batch []Change
	for _, k := range keys {
		old, ok := current[k]
		if !ok {
			continue
		}
		delete(current, k)
		batch = append(batch, Change{Area: area, Key: k, OldValue: old})
	}
	m.publish(batch)
	return nil
}

func (m *Memory) Clear(ctx context.Context, area Area) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrHostUnavailable
	}

	current := m.areas[area]
	batch := make([]Change, 0, len(current))
	for k, v := range current {
		batch = append(batch, Change{Area: area, Key: k, OldValue: v})
	}
	delete(m.areas, area)
	m.publish(batch)
	return nil
}

func (m *Memory) Stats(ctx context.Context, area Area) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Stats{}, common.ErrHostUnavailable
	}

	items := m.areas[area]
	return Stats{
		BytesInUse: areaBytes(items),
		QuotaBytes: m.quotas[area],
		KeyCount:   int64(len(items)),
	}, nil
}

func (m *Memory) Subscribe(ctx context.Context) (<-chan []Change, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, nil, common.ErrHostUnavailable
	}

	id := uuid.NewString()
	ch := make(chan []Change, subscriberBuffer)
	m.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subs[id]; ok {
				delete(m.subs, id)
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

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
	return nil
}

// publish fans a batch out to all subscribers. Called with mu held so
// batches arrive in commit order; sends never block, a full subscriber
// loses the batch.
func (m *Memory) publish(batch []Change) {
	if len(batch) == 0 {
		return
	}
	for _, ch := range m.subs {
		select {
		case ch <- batch:
		default:
		}
	}
}

func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}

func itemBytes(key string, value json.RawMessage) int64 {
	return int64(len(key) + len(value))
}

func areaBytes(items map[string]json.RawMessage) int64 {
	var total int64
	for k, v := range items {
		total += itemBytes(k, v)
	}
	return total
}
