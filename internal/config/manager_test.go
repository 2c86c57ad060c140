package config

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/storage"
	"github.com/larkstore/larkstore/internal/vault"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type env struct {
	store  *hostkv.Memory
	engine *storage.Manager
	vault  *vault.Manager
	mgr    *Manager
	clock  *fakeClock
}

func newEnv(t *testing.T, withVault bool) *env {
	t.Helper()
	store := hostkv.NewMemory()
	engine := storage.NewManager(store, nil, nopLogger{}, storage.Options{FlushInterval: time.Hour})
	t.Cleanup(func() { _ = engine.Close(context.Background()) })

	var vlt *vault.Manager
	if withVault {
		vlt = vault.NewManager(store, hostkv.AreaLocal, nopLogger{})
	}
	mgr := NewManager(engine, vlt, nopLogger{})
	clock := newFakeClock()
	mgr.now = clock.now
	t.Cleanup(mgr.Close)
	return &env{store: store, engine: engine, vault: vlt, mgr: mgr, clock: clock}
}

func (e *env) mustCreate(t *testing.T, in FeishuConfig) *FeishuConfig {
	t.Helper()
	created, err := e.mgr.CreateFeishuConfig(context.Background(), in)
	require.NoError(t, err)
	return created
}

func validProfile(name string) FeishuConfig {
	return FeishuConfig{Name: name, AppID: "cli_" + name, TableID: "tbl_" + name, AccessToken: "tok_" + name}
}

func TestInitialize_SynthesizesDefault(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	require.NoError(t, e.mgr.Initialize(ctx))

	active := e.mgr.ActiveConfig(ctx)
	assert.Equal(t, DefaultProfileID, active.ID)
	cfg := e.mgr.Config(ctx)
	require.Len(t, cfg.FeishuConfigs, 1)
	assert.True(t, cfg.FeishuConfigs[0].IsActive)
	assert.Equal(t, DefaultBaseURL, cfg.FeishuConfigs[0].BaseURL)
	assert.True(t, cfg.Encryption.Enabled)
	assert.Equal(t, 1, cfg.Encryption.KeyVersion)

	// The default is persisted, not just held in memory.
	require.NoError(t, e.engine.Flush(ctx))
	items, err := e.store.Get(ctx, hostkv.AreaLocal, []string{common.KeyStorageConfig})
	require.NoError(t, err)
	require.Contains(t, items, common.KeyStorageConfig)

	// Idempotent: a second Initialize does not duplicate the profile.
	require.NoError(t, e.mgr.Initialize(ctx))
	assert.Len(t, e.mgr.Config(ctx).FeishuConfigs, 1)
}

func TestInitialize_RepairsStoredAggregate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	stored := &StorageConfig{
		FeishuConfigs: []FeishuConfig{
			{Name: "first"},
			{Name: "second"},
		},
		ActiveConfigID: "does-not-exist",
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, e.store.Set(ctx, hostkv.AreaLocal, map[string]json.RawMessage{
		common.KeyStorageConfig: raw,
	}))

	require.NoError(t, e.mgr.Initialize(ctx))

	cfg := e.mgr.Config(ctx)
	require.Len(t, cfg.FeishuConfigs, 2)
	assert.Equal(t, cfg.FeishuConfigs[0].ID, cfg.ActiveConfigID, "dangling active repaired to first entry")
	for _, p := range cfg.FeishuConfigs {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, DefaultBaseURL, p.BaseURL)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestInitialize_MalformedDocumentStartsOver(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	require.NoError(t, e.store.Set(ctx, hostkv.AreaLocal, map[string]json.RawMessage{
		common.KeyStorageConfig: json.RawMessage(`"not an aggregate"`),
	}))

	require.NoError(t, e.mgr.Initialize(ctx))
	assert.Equal(t, DefaultProfileID, e.mgr.ActiveConfig(ctx).ID)
}

func TestCreateAndActivateProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	created := e.mustCreate(t, FeishuConfig{Name: "B", AppID: "x", TableID: "t", AccessToken: "tok"})
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, DefaultProfileID, created.ID)
	assert.Equal(t, DefaultBaseURL, created.BaseURL)
	assert.False(t, created.IsActive, "creation does not steal the active slot")
	assert.False(t, created.CreatedAt.IsZero())

	require.NoError(t, e.mgr.SetActiveConfig(ctx, created.ID))
	active := e.mgr.ActiveConfig(ctx)
	assert.Equal(t, "B", active.Name)
	assert.True(t, active.IsActive)

	cfg := e.mgr.Config(ctx)
	idx := cfg.profileIndex(DefaultProfileID)
	require.GreaterOrEqual(t, idx, 0)
	assert.False(t, cfg.FeishuConfigs[idx].IsActive, "former active lost the flag")
}

func TestCreateFeishuConfig_ReportsEveryViolation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	_, err := e.mgr.CreateFeishuConfig(ctx, FeishuConfig{})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "appId", "accessToken", "tableId"}, fields)

	assert.Len(t, e.mgr.Config(ctx).FeishuConfigs, 1, "nothing was appended")
}

func TestSetActiveConfig_UnknownID(t *testing.T) {
	e := newEnv(t, false)
	err := e.mgr.SetActiveConfig(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateFeishuConfig(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	created := e.mustCreate(t, validProfile("prod"))
	e.clock.advance(time.Hour)

	updated, err := e.mgr.UpdateFeishuConfig(ctx, created.ID, func(p *FeishuConfig) {
		p.Name = "renamed"
		p.ID = "hijacked"
		p.IsActive = true
		p.CreatedAt = time.Time{}
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// An invalid update leaves the profile untouched.
	_, err = e.mgr.UpdateFeishuConfig(ctx, created.ID, func(p *FeishuConfig) { p.Name = "" })
	require.ErrorIs(t, err, ErrValidation)
	cfg := e.mgr.Config(ctx)
	assert.Equal(t, "renamed", cfg.FeishuConfigs[cfg.profileIndex(created.ID)].Name)

	_, err = e.mgr.UpdateFeishuConfig(ctx, "missing", func(*FeishuConfig) {})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteFeishuConfig_PromotesFirstRemaining(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	second := e.mustCreate(t, validProfile("second"))
	require.NoError(t, e.mgr.Initialize(ctx))
	assert.Equal(t, DefaultProfileID, e.mgr.ActiveConfig(ctx).ID)

	require.NoError(t, e.mgr.DeleteFeishuConfig(ctx, DefaultProfileID))

	active := e.mgr.ActiveConfig(ctx)
	assert.Equal(t, second.ID, active.ID)
	assert.True(t, active.IsActive)

	require.ErrorIs(t, e.mgr.DeleteFeishuConfig(ctx, second.ID), ErrLastProfile)
	require.ErrorIs(t, e.mgr.DeleteFeishuConfig(ctx, "missing"), common.ErrNotFound)
}

func TestProfileInvariants_SurviveAnySequence(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	check := func() {
		t.Helper()
		cfg := e.mgr.Config(ctx)
		require.NotEmpty(t, cfg.FeishuConfigs)
		require.GreaterOrEqual(t, cfg.profileIndex(cfg.ActiveConfigID), 0)
		actives := 0
		for _, p := range cfg.FeishuConfigs {
			if p.IsActive {
				actives++
			}
		}
		require.Equal(t, 1, actives)
	}

	a := e.mustCreate(t, validProfile("a"))
	check()
	b := e.mustCreate(t, validProfile("b"))
	check()
	require.NoError(t, e.mgr.SetActiveConfig(ctx, b.ID))
	check()
	require.NoError(t, e.mgr.DeleteFeishuConfig(ctx, b.ID))
	check()
	require.NoError(t, e.mgr.DeleteFeishuConfig(ctx, DefaultProfileID))
	check()
	require.NoError(t, e.mgr.SetActiveConfig(ctx, a.ID))
	check()
	_ = e.mustCreate(t, validProfile("c"))
	check()
}

func TestSecretsEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	created := e.mustCreate(t, FeishuConfig{
		Name: "prod", AppID: "cli_a", AppSecret: "s3cret", AccessToken: "tok-1", TableID: "tbl",
	})
	assert.Equal(t, "s3cret", created.AppSecret, "in-memory copy stays plaintext")

	require.NoError(t, e.engine.Flush(ctx))
	items, err := e.store.Get(ctx, hostkv.AreaLocal, []string{common.KeyStorageConfig})
	require.NoError(t, err)
	raw := items[common.KeyStorageConfig]
	assert.NotContains(t, string(raw), "s3cret")
	assert.NotContains(t, string(raw), "tok-1")

	stored := &StorageConfig{}
	require.NoError(t, json.Unmarshal(raw, stored))
	idx := stored.profileIndex(created.ID)
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, vault.IsEncrypted(stored.FeishuConfigs[idx].AppSecret))
	assert.True(t, vault.IsEncrypted(stored.FeishuConfigs[idx].AccessToken))

	// A fresh manager over the same store decrypts on load.
	engine2 := storage.NewManager(e.store, nil, nopLogger{}, storage.Options{FlushInterval: time.Hour})
	t.Cleanup(func() { _ = engine2.Close(ctx) })
	mgr2 := NewManager(engine2, vault.NewManager(e.store, hostkv.AreaLocal, nopLogger{}), nopLogger{})
	t.Cleanup(mgr2.Close)
	require.NoError(t, mgr2.Initialize(ctx))

	cfg2 := mgr2.Config(ctx)
	j := cfg2.profileIndex(created.ID)
	require.GreaterOrEqual(t, j, 0)
	assert.Equal(t, "s3cret", cfg2.FeishuConfigs[j].AppSecret)
	assert.Equal(t, "tok-1", cfg2.FeishuConfigs[j].AccessToken)
}

func TestExternalChange_ReplacesAggregate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	require.NoError(t, e.mgr.Initialize(ctx))

	doc := DefaultConfig(time.Now())
	doc.FeishuConfigs[0].Name = "written elsewhere"
	doc.Encryption.Enabled = false
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, e.store.Set(ctx, hostkv.AreaLocal, map[string]json.RawMessage{
		common.KeyStorageConfig: raw,
	}))

	require.Eventually(t, func() bool {
		return e.mgr.Config(ctx).FeishuConfigs[0].Name == "written elsewhere"
	}, time.Second, 10*time.Millisecond)

	// A malformed external write is ignored.
	require.NoError(t, e.store.Set(ctx, hostkv.AreaLocal, map[string]json.RawMessage{
		common.KeyStorageConfig: json.RawMessage(`"oops"`),
	}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "written elsewhere", e.mgr.Config(ctx).FeishuConfigs[0].Name)
}

func TestRecordSavedAndBackupStats(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	require.NoError(t, e.mgr.RecordSaved(ctx, 3))
	require.NoError(t, e.mgr.RecordSaved(ctx, 2))
	cfg := e.mgr.Config(ctx)
	assert.Equal(t, 5, cfg.App.Stats.RecordsSaved)
	assert.False(t, cfg.App.Stats.LastSavedAt.IsZero())

	require.NoError(t, e.mgr.RecordBackup(ctx))
	assert.False(t, e.mgr.Config(ctx).App.Stats.LastBackupAt.IsZero())

	// UpdateApp cannot clobber the counters.
	require.NoError(t, e.mgr.UpdateApp(ctx, func(a *AppConfig) {
		a.Theme = "dark"
		a.Stats = AppStats{}
	}))
	cfg = e.mgr.Config(ctx)
	assert.Equal(t, "dark", cfg.App.Theme)
	assert.Equal(t, 5, cfg.App.Stats.RecordsSaved)

	err := e.mgr.UpdateApp(ctx, func(a *AppConfig) { a.BackupIntervalHours = -1 })
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateTableData(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)

	require.NoError(t, e.mgr.UpdateTableData(ctx, func(td *TableDataConfig) {
		td.FieldMappings = map[string]string{"title": "标题"}
		td.DedupeField = "url"
	}))
	cfg := e.mgr.Config(ctx)
	assert.Equal(t, "标题", cfg.TableData.FieldMappings["title"])
	assert.Equal(t, "url", cfg.TableData.DedupeField)

	require.NoError(t, e.mgr.UpdateTableData(ctx, func(td *TableDataConfig) {
		td.FieldMappings = nil
	}))
	assert.NotNil(t, e.mgr.Config(ctx).TableData.FieldMappings)
}

func TestRotateEncryptionKey(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	created := e.mustCreate(t, FeishuConfig{
		Name: "prod", AppID: "cli_a", AppSecret: "s3cret", AccessToken: "tok-1", TableID: "tbl",
	})
	require.NoError(t, e.engine.Flush(ctx))

	require.NoError(t, e.mgr.RotateEncryptionKey(ctx))

	cfg := e.mgr.Config(ctx)
	assert.Equal(t, 2, cfg.Encryption.KeyVersion)
	idx := cfg.profileIndex(created.ID)
	assert.Equal(t, "s3cret", cfg.FeishuConfigs[idx].AppSecret, "secrets survive rotation in memory")

	// The persisted form is sealed under the new key and still loadable.
	require.NoError(t, e.engine.Flush(ctx))
	engine2 := storage.NewManager(e.store, nil, nopLogger{}, storage.Options{FlushInterval: time.Hour})
	t.Cleanup(func() { _ = engine2.Close(ctx) })
	mgr2 := NewManager(engine2, vault.NewManager(e.store, hostkv.AreaLocal, nopLogger{}), nopLogger{})
	t.Cleanup(mgr2.Close)
	require.NoError(t, mgr2.Initialize(ctx))
	cfg2 := mgr2.Config(ctx)
	assert.Equal(t, "s3cret", cfg2.FeishuConfigs[cfg2.profileIndex(created.ID)].AppSecret)
}

func TestRotateEncryptionKey_RequiresVault(t *testing.T) {
	e := newEnv(t, false)
	require.Error(t, e.mgr.RotateEncryptionKey(context.Background()))
}

func TestConfig_DegradesToDefaultsWhenHostGone(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	require.NoError(t, e.store.Close())

	cfg := e.mgr.Config(ctx)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultProfileID, cfg.ActiveConfigID)
	assert.Equal(t, DefaultProfileID, e.mgr.ActiveConfig(ctx).ID)

	// Writes do not degrade; they fail.
	_, err := e.mgr.CreateFeishuConfig(ctx, validProfile("x"))
	require.Error(t, err)
}

func TestConfig_ReturnsDeepCopies(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	require.NoError(t, e.mgr.Initialize(ctx))

	cfg := e.mgr.Config(ctx)
	cfg.FeishuConfigs[0].Name = "scribbled"
	cfg.TableData.FieldMappings["rogue"] = "entry"
	cfg.ActiveConfigID = "rogue"

	fresh := e.mgr.Config(ctx)
	assert.Equal(t, "Default", fresh.FeishuConfigs[0].Name)
	assert.NotContains(t, fresh.TableData.FieldMappings, "rogue")
	assert.Equal(t, DefaultProfileID, fresh.ActiveConfigID)
}
