// Package hostkv defines the host key-value surface the persistence stack is
// built on: area-scoped get/set/remove/clear with byte accounting and a
// change-event feed. The daemon serves it over gRPC (grpckv), Memory serves
// it in-process; managers only ever see the Store interface.
package hostkv

import (
	"context"
	"encoding/json"
)

// Area names an isolated key namespace within the host store.
type Area string

const (
	// AreaLocal is the persistent area; survives daemon restarts.
	AreaLocal Area = "local"

	// AreaSession is held in daemon memory and vanishes with it.
	AreaSession Area = "session"
)

// Change describes one key mutation. OldValue is nil when the key was
// created, NewValue is nil when it was removed.
type Change struct {
	Area     Area            `json:"area"`
	Key      string          `json:"key"`
	OldValue json.RawMessage `json:"oldValue,omitempty"`
	NewValue json.RawMessage `json:"newValue,omitempty"`
}

// Stats reports usage of one area. BytesInUse counts serialized key and
// value lengths. QuotaBytes is zero when the area is unbounded.
type Stats struct {
	BytesInUse int64
	QuotaBytes int64
	KeyCount   int64
}

// Store is the host key-value surface.
//
// Values are opaque JSON documents; the store never inspects them. Set is
// atomic per call: either every item is applied or none. Mutations feed
// subscribers one Change batch per call, in commit order, after the data is
// durable. A subscriber that cannot keep up loses batches rather than
// blocking writers.
type Store interface {
	// Get returns the subset of keys that exist. Missing keys are simply
	// absent from the result, not an error.
	Get(ctx context.Context, area Area, keys []string) (map[string]json.RawMessage, error)

	// List returns every item in the area.
	List(ctx context.Context, area Area) (map[string]json.RawMessage, error)

	// Set upserts all items atomically.
	Set(ctx context.Context, area Area, items map[string]json.RawMessage) error

	// Remove deletes the given keys. Unknown keys are ignored.
	Remove(ctx context.Context, area Area, keys []string) error

	// Clear removes every item in the area.
	Clear(ctx context.Context, area Area) error

	// Stats reports byte usage, quota and key count for the area.
	Stats(ctx context.Context, area Area) (Stats, error)

	// Subscribe registers for change batches across all areas. The returned
	// cancel func unregisters and closes the channel; cancelling ctx does
	// the same.
	Subscribe(ctx context.Context) (<-chan []Change, func(), error)

	// Close releases the store. Subscriptions are closed; subsequent calls
	// fail.
	Close() error
}
