package config

import (
	"maps"
	"slices"
	"time"
)

const (
	// DefaultProfileID identifies the profile synthesized on first run.
	DefaultProfileID = "default"
	// DefaultBaseURL is the Feishu open-platform endpoint.
	DefaultBaseURL = "https://open.feishu.cn"

	defaultTheme               = "system"
	defaultLanguage            = "zh-CN"
	defaultBackupIntervalHours = 24
	defaultMaxBackups          = 5
)

// StorageConfig is the root aggregate persisted under the storageConfig key.
// It is mutated through Manager only; after Initialize the profile list is
// never empty and ActiveConfigID always references one of its members.
type StorageConfig struct {
	FeishuConfigs  []FeishuConfig  `json:"feishuConfigs"`
	ActiveConfigID string          `json:"activeConfigId"`
	TableData      TableDataConfig `json:"tableDataConfig"`
	App            AppConfig       `json:"appConfig"`
	Encryption     EncryptionInfo  `json:"encryption"`
}

// FeishuConfig is one named credential profile for a Feishu base.
// AppSecret and AccessToken are sensitive: the persisted form carries them
// encrypted, the in-memory form carries them decrypted.
type FeishuConfig struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AppID       string    `json:"appId"`
	AppSecret   string    `json:"appSecret,omitempty"`
	AccessToken string    `json:"accessToken"`
	TableID     string    `json:"tableId"`
	BaseURL     string    `json:"baseUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableDataConfig maps clipped columns onto table fields.
type TableDataConfig struct {
	FieldMappings map[string]string `json:"fieldMappings"`
	DedupeField   string            `json:"dedupeField,omitempty"`
	AppendMode    bool              `json:"appendMode"`
}

// AppConfig holds app-level settings, the backup policy and usage counters.
type AppConfig struct {
	Theme               string   `json:"theme"`
	Language            string   `json:"language"`
	AutoBackup          bool     `json:"autoBackup"`
	BackupIntervalHours int      `json:"backupIntervalHours"`
	MaxBackups          int      `json:"maxBackups"`
	Stats               AppStats `json:"stats"`
}

// AppStats is maintained by the manager, not by callers.
type AppStats struct {
	RecordsSaved int       `json:"recordsSaved"`
	LastSavedAt  time.Time `json:"lastSavedAt"`
	LastBackupAt time.Time `json:"lastBackupAt"`
}

// EncryptionInfo mirrors the vault state inside the aggregate.
type EncryptionInfo struct {
	Enabled    bool   `json:"enabled"`
	Algorithm  string `json:"algorithm"`
	KeyVersion int    `json:"keyVersion"`
}

// Clone returns a deep copy.
func (c *StorageConfig) Clone() *StorageConfig {
	out := *c
	out.FeishuConfigs = slices.Clone(c.FeishuConfigs)
	out.TableData.FieldMappings = maps.Clone(c.TableData.FieldMappings)
	return &out
}

// DefaultProfile returns the profile synthesized on an empty store. Its
// credentials are blank until the user fills them in.
func DefaultProfile(now time.Time) FeishuConfig {
	return FeishuConfig{
		ID:        DefaultProfileID,
		Name:      "Default",
		BaseURL:   DefaultBaseURL,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultConfig returns the aggregate synthesized on an empty store.
func DefaultConfig(now time.Time) *StorageConfig {
	profile := DefaultProfile(now)
	return &StorageConfig{
		FeishuConfigs:  []FeishuConfig{profile},
		ActiveConfigID: profile.ID,
		TableData: TableDataConfig{
			FieldMappings: map[string]string{},
			AppendMode:    true,
		},
		App: AppConfig{
			Theme:               defaultTheme,
			Language:            defaultLanguage,
			AutoBackup:          true,
			BackupIntervalHours: defaultBackupIntervalHours,
			MaxBackups:          defaultMaxBackups,
		},
		Encryption: EncryptionInfo{
			Enabled:   true,
			Algorithm: "aes-256-gcm",
		},
	}
}

func (c *StorageConfig) profileIndex(id string) int {
	return slices.IndexFunc(c.FeishuConfigs, func(f FeishuConfig) bool { return f.ID == id })
}

// applyActiveFlag keeps IsActive in sync with ActiveConfigID.
func (c *StorageConfig) applyActiveFlag() {
	for i := range c.FeishuConfigs {
		c.FeishuConfigs[i].IsActive = c.FeishuConfigs[i].ID == c.ActiveConfigID
	}
}
