package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/larkstore/larkstore/internal/common"
	"github.com/larkstore/larkstore/internal/cryptox"
	"github.com/larkstore/larkstore/internal/vault"
)

const (
	exportVersion  = 1
	exportSaltSize = 16
	kdfArgon2id    = "argon2id"
)

// exportEnvelope wraps a password-protected export. The byte fields marshal
// as base64 through encoding/json.
type exportEnvelope struct {
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Export serializes the aggregate as indented JSON. Without a password,
// sensitive fields keep their stored ciphertext form, readable only by an
// installation holding the same key. With a password, the whole document is
// sealed into an argon2id + AES-256-GCM envelope and carries the secrets in
// plaintext inside it, so it can move between installations.
func (m *Manager) Export(ctx context.Context, password string) ([]byte, error) {
	if err := m.ensureReady(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	cfg := m.current.Clone()
	m.mu.RUnlock()

	if password == "" {
		if cfg.Encryption.Enabled {
			for i := range cfg.FeishuConfigs {
				if err := m.encryptProfile(ctx, &cfg.FeishuConfigs[i]); err != nil {
					return nil, err
				}
			}
		}
		return json.MarshalIndent(cfg, "", "  ")
	}

	plain, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serializing configuration: %w", err)
	}
	salt := common.GenerateRandByteArray(exportSaltSize)
	key := cryptox.DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)

	nonce, ciphertext, err := cryptox.Seal(plain, key)
	if err != nil {
		return nil, fmt.Errorf("sealing export: %w", err)
	}
	return json.MarshalIndent(exportEnvelope{
		Version:    exportVersion,
		KDF:        kdfArgon2id,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, "", "  ")
}

// Import replaces the aggregate with the exported document. The document is
// never trusted blindly: structural invariants are repaired before commit
// and secrets are re-encrypted by the normal persist path. A wrong password
// or tampered envelope fails before anything is mutated.
func (m *Manager) Import(ctx context.Context, data []byte, password string) error {
	if err := m.ensureReady(ctx); err != nil {
		return err
	}

	probe := struct {
		KDF string `json:"kdf"`
	}{}
	_ = json.Unmarshal(data, &probe)

	switch {
	case probe.KDF != "" && password == "":
		return errors.New("export is password protected")
	case probe.KDF == "" && password != "":
		return errors.New("export is not password protected")
	case probe.KDF != "":
		env := exportEnvelope{}
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("parsing export envelope: %w", err)
		}
		if env.KDF != kdfArgon2id || env.Version != exportVersion {
			return fmt.Errorf("unsupported export format %q v%d", env.KDF, env.Version)
		}
		key := cryptox.DeriveKey([]byte(password), env.Salt)
		defer common.WipeByteArray(key)

		plain, err := cryptox.Open(env.Nonce, env.Ciphertext, key)
		if err != nil {
			return fmt.Errorf("%w: wrong password or tampered export", vault.ErrDecrypt)
		}
		data = plain
	}

	cfg := &StorageConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing export: %w", err)
	}
	if len(cfg.FeishuConfigs) == 0 {
		return newValidationError([]FieldError{{"feishuConfigs", "empty or missing"}})
	}
	validateAndFix(cfg, m.now())
	m.decryptProfiles(ctx, cfg)

	_, err := m.mutate(ctx, func(target *StorageConfig) error {
		*target = *cfg
		return nil
	})
	return err
}
