package storage

import (
	"context"
	"sync"

	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
)

// ListenerFunc receives one key change. Listeners run on the manager's
// dispatch goroutine; long work should be handed off.
type ListenerFunc func(change hostkv.Change)

// listenerHub routes changes to per-key and wildcard listeners.
type listenerHub struct {
	mu       sync.RWMutex
	nextID   uint64
	byKey    map[string]map[uint64]ListenerFunc
	wildcard map[uint64]ListenerFunc
}

func newListenerHub() *listenerHub {
	return &listenerHub{
		byKey:    make(map[string]map[uint64]ListenerFunc),
		wildcard: make(map[uint64]ListenerFunc),
	}
}

func (h *listenerHub) addKey(key string, fn ListenerFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.byKey[key] == nil {
		h.byKey[key] = make(map[uint64]ListenerFunc)
	}
	h.byKey[key][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m := h.byKey[key]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(h.byKey, key)
			}
		}
	}
}

func (h *listenerHub) addWildcard(fn ListenerFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.wildcard[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.wildcard, id)
	}
}

// dispatch invokes matching listeners. A panicking listener is logged and
// isolated; the rest still run.
func (h *listenerHub) dispatch(logger logging.Logger, change hostkv.Change) {
	h.mu.RLock()
	fns := make([]ListenerFunc, 0, len(h.byKey[change.Key])+len(h.wildcard))
	for _, fn := range h.byKey[change.Key] {
		fns = append(fns, fn)
	}
	for _, fn := range h.wildcard {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		h.invoke(logger, fn, change)
	}
}

func (h *listenerHub) invoke(logger logging.Logger, fn ListenerFunc, change hostkv.Change) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(context.Background(), "change listener panicked",
				"key", change.Key, "panic", r)
		}
	}()
	fn(change)
}
