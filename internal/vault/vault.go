// Package vault manages the AES-256-GCM key used to protect sensitive
// values at rest and performs all value encryption for the other managers.
//
// The key is created lazily on first use and persisted in the host store
// under the stable encryptionKey name. Encrypted values travel as a single
// string envelope carrying the nonce, ciphertext and key version.
package vault

import (
	"context"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/cryptox"
	"github.com/larkstore/larkstore/internal/hostkv"
	"github.com/larkstore/larkstore/internal/logging"
)

const (
	// algorithm is recorded in the key document so a future algorithm
	// change is detectable instead of producing garbage.
	algorithm = "aes-256-gcm"

	// envelopePrefix marks encrypted values. Format:
	// lse:<keyVersion>:<base64(nonce || ciphertext)>
	envelopePrefix = "lse:"
)

// keyDocument is the persisted form of the active key.
type keyDocument struct {
	Algorithm string    `json:"algorithm"`
	Key       string    `json:"key"` // base64 raw key material
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager owns the encryption key and the value envelope format.
//
// All operations initialize the key on first use. Initialization failures
// are wrapped in ErrKeyInit and fail the operation; there is no plaintext
// fallback.
type Manager struct {
	store  hostkv.Store
	area   hostkv.Area
	logger logging.Logger

	mu          sync.RWMutex
	aead        cipher.AEAD
	version     int
	initialized bool
}

func NewManager(store hostkv.Store, area hostkv.Area, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		area:   area,
		logger: logger.With("module", "vault"),
	}
}

// Initialize loads the persisted key, creating and persisting a fresh
// 256-bit key when none exists. Safe to call repeatedly and from concurrent
// goroutines; later calls are no-ops.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initLocked(ctx)
}

func (m *Manager) initLocked(ctx context.Context) error {
	if m.initialized {
		return nil
	}

	items, err := m.store.Get(ctx, m.area, []string{common.KeyEncryptionKey})
	if err != nil {
		return fmt.Errorf("%w: loading key document: %w", ErrKeyInit, err)
	}

	if rawDoc, ok := items[common.KeyEncryptionKey]; ok {
		doc := keyDocument{}
		if err := json.Unmarshal(rawDoc, &doc); err != nil {
			return fmt.Errorf("%w: malformed key document: %w", ErrKeyInit, err)
		}
		if doc.Algorithm != algorithm {
			return fmt.Errorf("%w: unsupported algorithm %q", ErrKeyInit, doc.Algorithm)
		}
		key, err := base64.StdEncoding.DecodeString(doc.Key)
		if err != nil {
			return fmt.Errorf("%w: malformed key material: %w", ErrKeyInit, err)
		}
		if len(key) != cryptox.KeySize {
			return fmt.Errorf("%w: key is %d bytes, want %d", ErrKeyInit, len(key), cryptox.KeySize)
		}
		if err := m.adoptKey(key, doc.Version); err != nil {
			return err
		}
		m.logger.Debug(ctx, "encryption key loaded", "version", doc.Version)
		return nil
	}

	key := common.GenerateRandByteArray(cryptox.KeySize)
	if err := m.persistKeyLocked(ctx, key, 1); err != nil {
		return err
	}
	if err := m.adoptKey(key, 1); err != nil {
		return err
	}
	m.logger.Info(ctx, "encryption key created", "version", 1)
	return nil
}

// adoptKey builds the AEAD and wipes the raw key material.
func (m *Manager) adoptKey(key []byte, version int) error {
	defer common.WipeByteArray(key)

	aead, err := cryptox.NewAEAD(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyInit, err)
	}
	m.aead = aead
	m.version = version
	m.initialized = true
	return nil
}

func (m *Manager) persistKeyLocked(ctx context.Context, key []byte, version int) error {
	doc := keyDocument{
		Algorithm: algorithm,
		Key:       base64.StdEncoding.EncodeToString(key),
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}
	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyInit, err)
	}
	err = m.store.Set(ctx, m.area, map[string]json.RawMessage{common.KeyEncryptionKey: rawDoc})
	if err != nil {
		return fmt.Errorf("%w: persisting key document: %w", ErrKeyInit, err)
	}
	return nil
}

func (m *Manager) ensureInit(ctx context.Context) error {
	m.mu.RLock()
	ok := m.initialized
	m.mu.RUnlock()
	if ok {
		return nil
	}
	return m.Initialize(ctx)
}

// KeyVersion returns the active key version, initializing if needed.
func (m *Manager) KeyVersion(ctx context.Context) (int, error) {
	if err := m.ensureInit(ctx); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version, nil
}

// Encrypt seals plaintext into an envelope string. Each call uses a fresh
// nonce, so equal plaintexts produce different envelopes.
func (m *Manager) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if err := m.ensureInit(ctx); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	nonce := common.GenerateRandByteArray(m.aead.NonceSize())
	sealed := m.aead.Seal(nil, nonce, []byte(plaintext), nil)

	body := base64.StdEncoding.EncodeToString(append(nonce, sealed...))
	return envelopePrefix + strconv.Itoa(m.version) + ":" + body, nil
}

// Decrypt opens an envelope produced by Encrypt. Envelopes sealed under a
// rotated-away key version fail with ErrDecrypt.
func (m *Manager) Decrypt(ctx context.Context, envelope string) (string, error) {
	if err := m.ensureInit(ctx); err != nil {
		return "", err
	}

	version, nonce, sealed, err := parseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if version != m.version {
		return "", fmt.Errorf("%w: key version %d unavailable, active is %d", ErrDecrypt, version, m.version)
	}
	plaintext, err := m.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return string(plaintext), nil
}

// IsEncrypted reports whether s looks like a vault envelope.
func IsEncrypted(s string) bool {
	_, _, _, err := parseEnvelope(s)
	return err == nil
}

func parseEnvelope(s string) (version int, nonce, sealed []byte, err error) {
	rest, ok := strings.CutPrefix(s, envelopePrefix)
	if !ok {
		return 0, nil, nil, fmt.Errorf("%w: not an envelope", ErrDecrypt)
	}
	verStr, body, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, nil, nil, fmt.Errorf("%w: malformed envelope", ErrDecrypt)
	}
	version, err = strconv.Atoi(verStr)
	if err != nil || version < 1 {
		return 0, nil, nil, fmt.Errorf("%w: malformed key version", ErrDecrypt)
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: malformed envelope body: %w", ErrDecrypt, err)
	}
	if len(raw) <= cryptox.NonceSize {
		return 0, nil, nil, fmt.Errorf("%w: envelope too short", ErrDecrypt)
	}
	return version, raw[:cryptox.NonceSize], raw[cryptox.NonceSize:], nil
}

// EncryptFields returns a copy of values with the named fields encrypted.
// Absent or empty fields are skipped; already-encrypted fields are left
// untouched so re-saving a partially loaded object cannot double-wrap.
// Any encryption failure aborts: secrets are never stored in plaintext.
func (m *Manager) EncryptFields(ctx context.Context, values map[string]string, fields []string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	for _, f := range fields {
		v, ok := out[f]
		if !ok || v == "" || IsEncrypted(v) {
			continue
		}
		enc, err := m.Encrypt(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("encrypting field %s: %w", f, err)
		}
		out[f] = enc
	}
	return out, nil
}

// DecryptFields returns a copy of values with the named fields decrypted.
// A field that fails to decrypt is logged and left as-is; the remaining
// fields are still processed.
func (m *Manager) DecryptFields(ctx context.Context, values map[string]string, fields []string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	for _, f := range fields {
		v, ok := out[f]
		if !ok || v == "" || !IsEncrypted(v) {
			continue
		}
		dec, err := m.Decrypt(ctx, v)
		if err != nil {
			m.logger.Warn(ctx, "field failed to decrypt, leaving value as-is", "field", f, "error", err)
			continue
		}
		out[f] = dec
	}
	return out
}

// RotateKey replaces the active key with a fresh one and persists it.
// Destructive: envelopes sealed under the previous key can no longer be
// decrypted. Callers that keep encrypted fields must decrypt them before
// rotating and re-encrypt after.
func (m *Manager) RotateKey(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.initLocked(ctx); err != nil {
		return err
	}

	next := m.version + 1
	key := common.GenerateRandByteArray(cryptox.KeySize)
	if err := m.persistKeyLocked(ctx, key, next); err != nil {
		return err
	}
	if err := m.adoptKey(key, next); err != nil {
		return err
	}
	m.logger.Info(ctx, "encryption key rotated", "version", next)
	return nil
}

// HealthCheck round-trips a probe value through encrypt and decrypt.
func (m *Manager) HealthCheck(ctx context.Context) error {
	const probe = "larkstore-vault-health"
	enc, err := m.Encrypt(ctx, probe)
	if err != nil {
		return fmt.Errorf("health check encrypt: %w", err)
	}
	dec, err := m.Decrypt(ctx, enc)
	if err != nil {
		return fmt.Errorf("health check decrypt: %w", err)
	}
	if dec != probe {
		return fmt.Errorf("health check round trip mismatch")
	}
	return nil
}
