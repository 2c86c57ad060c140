// Package config implements the typed configuration layer on top of the
// persistence engine: a validated StorageConfig aggregate holding named
// credential profiles, exactly one of which is active, plus export/import
// and key-rotation flows. Sensitive profile fields are encrypted before
// they reach the engine and decrypted into the in-memory copy on load.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
	"github.com/larkstore/larkstore/internal/storage"
	"github.com/larkstore/larkstore/internal/vault"
)

const (
	fieldAppSecret   = "appSecret"
	fieldAccessToken = "accessToken"
)

var sensitiveFields = []string{fieldAppSecret, fieldAccessToken}

type managerState int

const (
	stateUninitialized managerState = iota
	stateInitializing
	stateReady
)

// Manager owns the StorageConfig aggregate. All mutation goes through it;
// the aggregate is never written to the engine directly.
type Manager struct {
	engine *storage.Manager
	vault  *vault.Manager
	logger logging.Logger

	now func() time.Time

	mu       sync.RWMutex
	state    managerState
	ready    chan struct{}
	initErr  error
	current  *StorageConfig
	stopFeed func()
}

// NewManager wires a configuration manager. vlt may be nil, which disables
// field encryption for the whole aggregate.
func NewManager(engine *storage.Manager, vlt *vault.Manager, logger logging.Logger) *Manager {
	return &Manager{
		engine: engine,
		vault:  vlt,
		logger: logger.With("module", "config"),
		now:    time.Now,
	}
}

// Initialize loads the aggregate, synthesizing and persisting a default when
// the store is empty or the stored document is malformed, and subscribes to
// the engine's change feed so external writes replace the in-memory copy.
// Idempotent; concurrent callers block until the one initialization finishes.
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
			} else {
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
	if err := m.engine.Initialize(ctx); err != nil {
		return fmt.Errorf("storage engine not ready: %w", err)
	}

	now := m.now()
	raw, found, err := m.engine.Get(ctx, common.KeyStorageConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	cfg := &StorageConfig{}
	needsPersist := false
	switch {
	case !found:
		cfg = DefaultConfig(now)
		needsPersist = true
		m.logger.Info(ctx, "no configuration found, creating default")
	default:
		if err := json.Unmarshal(raw, cfg); err != nil {
			m.logger.Warn(ctx, "stored configuration is malformed, starting over from defaults", "error", err)
			cfg = DefaultConfig(now)
			needsPersist = true
		}
	}
	if validateAndFix(cfg, now) {
		needsPersist = true
	}

	if m.vault == nil {
		if cfg.Encryption.Enabled {
			cfg.Encryption.Enabled = false
			needsPersist = true
			m.logger.Warn(ctx, "no key vault configured, disabling field encryption")
		}
	} else if cfg.Encryption.Enabled {
		version, err := m.vault.KeyVersion(ctx)
		if err != nil {
			return fmt.Errorf("key vault not ready: %w", err)
		}
		if cfg.Encryption.KeyVersion != version {
			cfg.Encryption.KeyVersion = version
			needsPersist = true
		}
	}

	m.decryptProfiles(ctx, cfg)
	if needsPersist {
		if err := m.persist(ctx, cfg); err != nil {
			return err
		}
	}
	m.current = cfg
	m.stopFeed = m.engine.AddListener(common.KeyStorageConfig, m.onExternalChange)
	m.logger.Debug(ctx, "configuration ready", "profiles", len(cfg.FeishuConfigs), "active", cfg.ActiveConfigID)
	return nil
}

// onExternalChange swaps the in-memory aggregate when another process writes
// the configuration key. Our own flushed writes arrive here too; replaying
// them is a no-op. A malformed or removed value keeps the current copy.
func (m *Manager) onExternalChange(ch hostkv.Change) {
	ctx := context.Background()
	if ch.NewValue == nil {
		m.logger.Warn(ctx, "configuration removed externally, keeping in-memory copy")
		return
	}
	cfg := &StorageConfig{}
	if err := json.Unmarshal(ch.NewValue, cfg); err != nil {
		m.logger.Warn(ctx, "ignoring malformed external configuration update", "error", err)
		return
	}
	validateAndFix(cfg, m.now())
	m.decryptProfiles(ctx, cfg)

	m.mu.Lock()
	m.current = cfg
	m.mu.Unlock()
	m.logger.Debug(ctx, "configuration refreshed from change feed")
}

// Close detaches from the change feed. Reads keep serving the last known
// configuration.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopFeed != nil {
		m.stopFeed()
		m.stopFeed = nil
	}
}

// Config returns a deep copy of the aggregate. When the engine is
// unreachable the synthesized default is returned instead, so read-only
// surfaces keep working.
func (m *Manager) Config(ctx context.Context) *StorageConfig {
	if err := m.ensureReady(ctx); err != nil {
		m.logger.Warn(ctx, "configuration unavailable, serving defaults", "error", err)
		return DefaultConfig(m.now())
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// ActiveConfig returns a copy of the active profile.
func (m *Manager) ActiveConfig(ctx context.Context) *FeishuConfig {
	cfg := m.Config(ctx)
	idx := cfg.profileIndex(cfg.ActiveConfigID)
	if idx < 0 {
		// The invariant guarantees resolution; first entry is the repair rule.
		idx = 0
	}
	p := cfg.FeishuConfigs[idx]
	return &p
}

// mutate clones the aggregate, applies fn, persists and swaps the copy in.
// Any error leaves both the store and the in-memory aggregate untouched.
func (m *Manager) mutate(ctx context.Context, fn func(cfg *StorageConfig) error) (*StorageConfig, error) {
	if err := m.ensureReady(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.current.Clone()
	if err := fn(cfg); err != nil {
		return nil, err
	}
	if err := m.persist(ctx, cfg); err != nil {
		return nil, err
	}
	m.current = cfg
	return cfg, nil
}

// CreateFeishuConfig fills defaults, validates and appends a new profile.
// The profile is not made active; use SetActiveConfig for that.
func (m *Manager) CreateFeishuConfig(ctx context.Context, in FeishuConfig) (*FeishuConfig, error) {
	var created FeishuConfig
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		p := in
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.BaseURL == "" {
			p.BaseURL = DefaultBaseURL
		}
		now := m.now()
		p.CreatedAt = now
		p.UpdatedAt = now
		p.IsActive = false

		fields := validateProfile(p)
		if cfg.profileIndex(p.ID) >= 0 {
			fields = append(fields, FieldError{"id", fmt.Sprintf("profile %q already exists", p.ID)})
		}
		if err := newValidationError(fields); err != nil {
			return err
		}
		cfg.FeishuConfigs = append(cfg.FeishuConfigs, p)
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFeishuConfig applies fn to a copy of the named profile, re-validates
// and persists. ID, CreatedAt and the active flag cannot be changed by fn;
// UpdatedAt is bumped on success.
func (m *Manager) UpdateFeishuConfig(ctx context.Context, id string, fn func(*FeishuConfig)) (*FeishuConfig, error) {
	var updated FeishuConfig
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		idx := cfg.profileIndex(id)
		if idx < 0 {
			return fmt.Errorf("profile %q: %w", id, common.ErrNotFound)
		}
		p := &cfg.FeishuConfigs[idx]
		pinned := *p
		fn(p)
		p.ID, p.CreatedAt, p.IsActive = pinned.ID, pinned.CreatedAt, pinned.IsActive
		p.UpdatedAt = m.now()

		if err := newValidationError(validateProfile(*p)); err != nil {
			return err
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFeishuConfig removes a profile. Deleting the active profile promotes
// the first remaining one; deleting the last profile is refused.
func (m *Manager) DeleteFeishuConfig(ctx context.Context, id string) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		idx := cfg.profileIndex(id)
		if idx < 0 {
			return fmt.Errorf("profile %q: %w", id, common.ErrNotFound)
		}
		if len(cfg.FeishuConfigs) == 1 {
			return ErrLastProfile
		}
		wasActive := cfg.ActiveConfigID == id
		cfg.FeishuConfigs = append(cfg.FeishuConfigs[:idx], cfg.FeishuConfigs[idx+1:]...)
		if wasActive {
			cfg.ActiveConfigID = cfg.FeishuConfigs[0].ID
		}
		cfg.applyActiveFlag()
		return nil
	})
	return err
}

// SetActiveConfig designates the named profile as active.
func (m *Manager) SetActiveConfig(ctx context.Context, id string) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		if cfg.profileIndex(id) < 0 {
			return fmt.Errorf("profile %q: %w", id, common.ErrNotFound)
		}
		cfg.ActiveConfigID = id
		cfg.applyActiveFlag()
		return nil
	})
	return err
}

// UpdateTableData applies fn to the table-data settings and persists.
func (m *Manager) UpdateTableData(ctx context.Context, fn func(*TableDataConfig)) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		fn(&cfg.TableData)
		if cfg.TableData.FieldMappings == nil {
			cfg.TableData.FieldMappings = map[string]string{}
		}
		return nil
	})
	return err
}

// UpdateApp applies fn to the app settings and persists. Usage statistics
// are owned by the manager and survive fn unchanged.
func (m *Manager) UpdateApp(ctx context.Context, fn func(*AppConfig)) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		stats := cfg.App.Stats
		fn(&cfg.App)
		cfg.App.Stats = stats

		var fields []FieldError
		if cfg.App.BackupIntervalHours <= 0 {
			fields = append(fields, FieldError{"appConfig.backupIntervalHours", "must be positive"})
		}
		if cfg.App.MaxBackups <= 0 {
			fields = append(fields, FieldError{"appConfig.maxBackups", "must be positive"})
		}
		return newValidationError(fields)
	})
	return err
}

// RecordSaved adds n to the saved-records counter.
func (m *Manager) RecordSaved(ctx context.Context, n int) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		cfg.App.Stats.RecordsSaved += n
		cfg.App.Stats.LastSavedAt = m.now()
		return nil
	})
	return err
}

// RecordBackup stamps the time of the latest successful backup.
func (m *Manager) RecordBackup(ctx context.Context) error {
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		cfg.App.Stats.LastBackupAt = m.now()
		return nil
	})
	return err
}

// RotateEncryptionKey replaces the vault key and re-encrypts the aggregate
// under the new one. The in-memory copy holds the decrypted secrets, so the
// persist that follows rotation seals them with the fresh key. Fields that
// earlier failed tolerant decryption stay sealed under the retired key and
// become unreadable; rotation is serialized with all other mutations.
func (m *Manager) RotateEncryptionKey(ctx context.Context) error {
	if m.vault == nil {
		return errors.New("encryption is not enabled")
	}
	_, err := m.mutate(ctx, func(cfg *StorageConfig) error {
		if err := m.vault.RotateKey(ctx); err != nil {
			return err
		}
		version, err := m.vault.KeyVersion(ctx)
		if err != nil {
			return err
		}
		cfg.Encryption.Enabled = true
		cfg.Encryption.Algorithm = "aes-256-gcm"
		cfg.Encryption.KeyVersion = version
		return nil
	})
	return err
}

// persist writes the aggregate to the engine, sealing sensitive fields
// first. The caller's copy is not modified.
func (m *Manager) persist(ctx context.Context, cfg *StorageConfig) error {
	out := cfg.Clone()
	if out.Encryption.Enabled {
		if m.vault == nil {
			return errors.New("encryption enabled without a key vault")
		}
		for i := range out.FeishuConfigs {
			if err := m.encryptProfile(ctx, &out.FeishuConfigs[i]); err != nil {
				return err
			}
		}
	}
	if err := m.engine.Set(ctx, common.KeyStorageConfig, out); err != nil {
		return fmt.Errorf("persisting configuration: %w", err)
	}
	return nil
}

func (m *Manager) encryptProfile(ctx context.Context, p *FeishuConfig) error {
	values := map[string]string{
		fieldAppSecret:   p.AppSecret,
		fieldAccessToken: p.AccessToken,
	}
	enc, err := m.vault.EncryptFields(ctx, values, sensitiveFields)
	if err != nil {
		return fmt.Errorf("encrypting profile %q: %w", p.ID, err)
	}
	p.AppSecret = enc[fieldAppSecret]
	p.AccessToken = enc[fieldAccessToken]
	return nil
}

// decryptProfiles decrypts sensitive fields in place, tolerantly: a field
// that cannot be decrypted keeps its stored form.
func (m *Manager) decryptProfiles(ctx context.Context, cfg *StorageConfig) {
	if m.vault == nil {
		return
	}
	for i := range cfg.FeishuConfigs {
		p := &cfg.FeishuConfigs[i]
		values := map[string]string{
			fieldAppSecret:   p.AppSecret,
			fieldAccessToken: p.AccessToken,
		}
		dec := m.vault.DecryptFields(ctx, values, sensitiveFields)
		p.AppSecret = dec[fieldAppSecret]
		p.AccessToken = dec[fieldAccessToken]
	}
}
