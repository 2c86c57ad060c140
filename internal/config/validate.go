package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// quotaWarnPercent is the usage level above which Validate starts warning.
const quotaWarnPercent = 80

// validateProfile checks one profile and reports every violated field.
func validateProfile(p FeishuConfig) []FieldError {
	var fields []FieldError
	if p.ID == "" {
		fields = append(fields, FieldError{"id", "required"})
	}
	if p.Name == "" {
		fields = append(fields, FieldError{"name", "required"})
	}
	if p.AppID == "" {
		fields = append(fields, FieldError{"appId", "required"})
	}
	if p.AccessToken == "" {
		fields = append(fields, FieldError{"accessToken", "required"})
	}
	if p.TableID == "" {
		fields = append(fields, FieldError{"tableId", "required"})
	}
	if p.BaseURL == "" {
		fields = append(fields, FieldError{"baseUrl", "required"})
	} else if u, err := url.Parse(p.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		fields = append(fields, FieldError{"baseUrl", "must be an http(s) URL"})
	}
	return fields
}

// validateStorageConfig checks the whole aggregate, profiles included.
func validateStorageConfig(c *StorageConfig) []FieldError {
	var fields []FieldError
	if len(c.FeishuConfigs) == 0 {
		fields = append(fields, FieldError{"feishuConfigs", "at least one profile is required"})
	}
	seen := make(map[string]bool, len(c.FeishuConfigs))
	for i, p := range c.FeishuConfigs {
		if seen[p.ID] {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("feishuConfigs[%d].id", i),
				Message: fmt.Sprintf("duplicate id %q", p.ID),
			})
		}
		seen[p.ID] = true
		for _, f := range validateProfile(p) {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("feishuConfigs[%d].%s", i, f.Field),
				Message: f.Message,
			})
		}
	}
	switch {
	case c.ActiveConfigID == "":
		fields = append(fields, FieldError{"activeConfigId", "required"})
	case c.profileIndex(c.ActiveConfigID) < 0:
		fields = append(fields, FieldError{"activeConfigId", fmt.Sprintf("no profile with id %q", c.ActiveConfigID)})
	}
	if c.App.BackupIntervalHours <= 0 {
		fields = append(fields, FieldError{"appConfig.backupIntervalHours", "must be positive"})
	}
	if c.App.MaxBackups <= 0 {
		fields = append(fields, FieldError{"appConfig.maxBackups", "must be positive"})
	}
	return fields
}

// validateAndFix repairs the structural invariants of an aggregate in place
// and reports whether anything changed. Schema problems that have no safe
// repair (a profile with blank credentials, say) are left for Validate to
// report.
func validateAndFix(c *StorageConfig, now time.Time) bool {
	fixed := false

	if len(c.FeishuConfigs) == 0 {
		c.FeishuConfigs = []FeishuConfig{DefaultProfile(now)}
		c.ActiveConfigID = DefaultProfileID
		fixed = true
	}

	seen := make(map[string]bool, len(c.FeishuConfigs))
	for i := range c.FeishuConfigs {
		p := &c.FeishuConfigs[i]
		if p.ID == "" || seen[p.ID] {
			p.ID = uuid.NewString()
			fixed = true
		}
		seen[p.ID] = true
		if p.BaseURL == "" {
			p.BaseURL = DefaultBaseURL
			fixed = true
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
			fixed = true
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = p.CreatedAt
			fixed = true
		}
	}

	if c.profileIndex(c.ActiveConfigID) < 0 {
		c.ActiveConfigID = c.FeishuConfigs[0].ID
		fixed = true
	}
	for i := range c.FeishuConfigs {
		active := c.FeishuConfigs[i].ID == c.ActiveConfigID
		if c.FeishuConfigs[i].IsActive != active {
			c.FeishuConfigs[i].IsActive = active
			fixed = true
		}
	}

	if c.TableData.FieldMappings == nil {
		c.TableData.FieldMappings = map[string]string{}
		fixed = true
	}
	if c.App.Theme == "" {
		c.App.Theme = defaultTheme
		fixed = true
	}
	if c.App.Language == "" {
		c.App.Language = defaultLanguage
		fixed = true
	}
	if c.App.BackupIntervalHours <= 0 {
		c.App.BackupIntervalHours = defaultBackupIntervalHours
		fixed = true
	}
	if c.App.MaxBackups <= 0 {
		c.App.MaxBackups = defaultMaxBackups
		fixed = true
	}
	if c.Encryption.Enabled && c.Encryption.Algorithm == "" {
		c.Encryption.Algorithm = "aes-256-gcm"
		fixed = true
	}
	return fixed
}

// Report is the result of an aggregate health check. The three lists are
// independent severities: errors block saving records, warnings and
// suggestions do not.
type Report struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// Validate combines schema validation, an encryption self-test, a storage
// quota check and a backup staleness check.
func (m *Manager) Validate(ctx context.Context) (Report, error) {
	if err := m.ensureReady(ctx); err != nil {
		return Report{}, err
	}
	m.mu.RLock()
	cfg := m.current.Clone()
	m.mu.RUnlock()

	report := Report{}
	for _, f := range validateStorageConfig(cfg) {
		report.Errors = append(report.Errors, f.String())
	}
	if m.vault != nil && cfg.Encryption.Enabled {
		if err := m.vault.HealthCheck(ctx); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("encryption self-test failed: %v", err))
		}
	}

	stats, err := m.engine.Stats(ctx)
	switch {
	case err != nil:
		report.Warnings = append(report.Warnings, fmt.Sprintf("storage statistics unavailable: %v", err))
	case stats.UsagePercent > quotaWarnPercent:
		report.Warnings = append(report.Warnings, fmt.Sprintf("storage usage at %.1f%% of quota", stats.UsagePercent))
	}

	interval := time.Duration(cfg.App.BackupIntervalHours) * time.Hour
	switch last := cfg.App.Stats.LastBackupAt; {
	case last.IsZero():
		report.Suggestions = append(report.Suggestions, "no backup recorded yet, consider creating one")
	case m.now().Sub(last) > interval:
		age := m.now().Sub(last).Round(time.Minute)
		report.Suggestions = append(report.Suggestions, fmt.Sprintf("last backup was %s ago, consider creating a fresh one", age))
	}

	report.Valid = len(report.Errors) == 0
	return report, nil
}
