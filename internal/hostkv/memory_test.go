package hostkv

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkstore/larkstore/internal/common"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func recvBatch(t *testing.T, ch <-chan []Change) []Change {
	t.Helper()
	select {
	case batch, ok := <-ch:
		require.True(t, ok, "feed closed unexpectedly")
		return batch
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change batch")
		return nil
	}
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Set(ctx, AreaLocal, map[string]json.RawMessage{
		"a": raw(`1`),
		"b": raw(`"two"`),
	})
	require.NoError(t, err)

	got, err := m.Get(ctx, AreaLocal, []string{"a", "b", "missing"})
	require.NoError(t, err)
	require.Equal(t, map[string]json.RawMessage{"a": raw(`1`), "b": raw(`"two"`)}, got)

	// Areas are isolated.
	other, err := m.Get(ctx, AreaSession, []string{"a"})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestMemory_ValueIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	v := raw(`"original"`)
	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"k": v}))
	v[1] = 'X'

	got, err := m.Get(ctx, AreaLocal, []string{"k"})
	require.NoError(t, err)
	require.Equal(t, raw(`"original"`), got["k"])

	got["k"][1] = 'Y'
	again, err := m.Get(ctx, AreaLocal, []string{"k"})
	require.NoError(t, err)
	require.Equal(t, raw(`"original"`), again["k"])
}

func TestMemory_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{
		"a": raw(`1`), "b": raw(`2`), "c": raw(`3`),
	}))

	require.NoError(t, m.Remove(ctx, AreaLocal, []string{"a", "nope"}))
	items, err := m.List(ctx, AreaLocal)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, m.Clear(ctx, AreaLocal))
	items, err = m.List(ctx, AreaLocal)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMemory_Stats(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetQuota(AreaLocal, 1024)

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{
		"ab": raw(`"xy"`), // 2 + 4 bytes
	}))

	stats, err := m.Stats(ctx, AreaLocal)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.BytesInUse)
	assert.Equal(t, int64(1024), stats.QuotaBytes)
	assert.Equal(t, int64(1), stats.KeyCount)
}

func TestMemory_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetQuota(AreaLocal, 10)

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"a": raw(`12`)}))

	err := m.Set(ctx, AreaLocal, map[string]json.RawMessage{
		"b": raw(`"0123456789"`),
	})
	require.ErrorIs(t, err, common.ErrQuotaExceeded)

	// Nothing from the failed batch was applied.
	items, err := m.List(ctx, AreaLocal)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Replacing an existing value counts the replacement, not the sum.
	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"a": raw(`34`)}))
}

func TestMemory_SubscribeDeliversBatches(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ch, cancel, err := m.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"k": raw(`1`)}))
	batch := recvBatch(t, ch)
	require.Len(t, batch, 1)
	assert.Equal(t, AreaLocal, batch[0].Area)
	assert.Equal(t, "k", batch[0].Key)
	assert.Nil(t, batch[0].OldValue)
	assert.Equal(t, raw(`1`), batch[0].NewValue)

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"k": raw(`2`)}))
	batch = recvBatch(t, ch)
	assert.Equal(t, raw(`1`), batch[0].OldValue)
	assert.Equal(t, raw(`2`), batch[0].NewValue)

	require.NoError(t, m.Remove(ctx, AreaLocal, []string{"k"}))
	batch = recvBatch(t, ch)
	assert.Equal(t, raw(`2`), batch[0].OldValue)
	assert.Nil(t, batch[0].NewValue)
}

func TestMemory_SubscribeCancel(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ch, cancel, err := m.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	cancel() // idempotent

	_, ok := <-ch
	require.False(t, ok)

	// Writes after cancel do not panic on the closed channel.
	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{"k": raw(`1`)}))
}

func TestMemory_SubscribeContextCancel(t *testing.T) {
	m := NewMemory()

	ctx, cancelCtx := context.WithCancel(context.Background())
	ch, _, err := m.Subscribe(ctx)
	require.NoError(t, err)

	cancelCtx()
	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("feed not closed after context cancel")
	}
}

func TestMemory_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ch, _, err := m.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, ok := <-ch
	require.False(t, ok)

	_, err = m.Get(ctx, AreaLocal, []string{"k"})
	require.ErrorIs(t, err, common.ErrHostUnavailable)
	err = m.Set(ctx, AreaLocal, map[string]json.RawMessage{"k": raw(`1`)})
	require.ErrorIs(t, err, common.ErrHostUnavailable)
}

func TestMemory_ClearEmitsChangePerKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, AreaLocal, map[string]json.RawMessage{
		"a": raw(`1`), "b": raw(`2`),
	}))

	ch, cancel, err := m.Subscribe(ctx)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, m.Clear(ctx, AreaLocal))
	batch := recvBatch(t, ch)
	require.Len(t, batch, 2)
	for _, c := range batch {
		assert.Nil(t, c.NewValue)
		assert.NotNil(t, c.OldValue)
	}
}
