package storage

import (
	"encoding/json"
	"sync"
)

// queueOp is one pending write. A nil value with remove set is a tombstone.
type queueOp struct {
	value  json.RawMessage
	remove bool
}

// writeQueue coalesces pending writes per key: the newest op for a key
// replaces any queued one, so a flush applies at most one op per key.
type writeQueue struct {
	mu  sync.Mutex
	ops map[string]queueOp
}

func newWriteQueue() *writeQueue {
	return &writeQueue{ops: make(map[string]queueOp)}
}

// put queues an op and reports the resulting queue length.
func (q *writeQueue) put(key string, op queueOp) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops[key] = op
	return len(q.ops)
}

func (q *writeQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// peek returns the pending op for key, if any. Reads consult it so queued
// removals and writes win over stale host state.
func (q *writeQueue) peek(key string) (queueOp, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	op, ok := q.ops[key]
	return op, ok
}

// drain removes and returns everything queued, split into upserts and
// removals.
func (q *writeQueue) drain() (sets map[string]json.RawMessage, removes []string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.ops) == 0 {
		return nil, nil
	}
	sets = make(map[string]json.RawMessage)
	for key, op := range q.ops {
		if op.remove {
			removes = append(removes, key)
		} else {
			sets[key] = op.value
		}
	}
	q.ops = make(map[string]queueOp)
	return sets, removes
}

// restore re-queues ops from a failed flush. A key that gained a newer op
// in the meantime keeps the newer one.
func (q *writeQueue) restore(sets map[string]json.RawMessage, removes []string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for key, value := range sets {
		if _, ok := q.ops[key]; !ok {
			q.ops[key] = queueOp{value: value}
		}
	}
	for _, key := range removes {
		if _, ok := q.ops[key]; !ok {
			q.ops[key] = queueOp{remove: true}
		}
	}
}

// reset discards everything queued. Used by Clear: queued writes for a
// cleared area must not resurface after the clear.
func (q *writeQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = make(map[string]queueOp)
}
