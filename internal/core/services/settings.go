package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage. The keys are flat, matching the
// file layout existing installations already have on disk.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDefaultPeriod   = "default_period"
	keyDefaultInterval = "default_interval"
	keyUserID          = "user_id"
	keySessionCookie   = "session_cookie"
)

// settingsKeys is the display order for All.
var settingsKeys = []string{keyDefaultPeriod, keyDefaultInterval, keyUserID, keySessionCookie}

// notSet marks keys with no stored value in display output.
const notSet = "(not set)"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the resolved settings. Stored values that fail to parse
// fall back to defaults rather than erroring, so a hand-edited config
// file can never make the CLI unusable.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()

	if period, err := domain.ParsePeriod(s.configStore.GetString(keyDefaultPeriod)); err == nil {
		settings.DefaultPeriod = period
	}
	if secs := s.configStore.GetInt(keyDefaultInterval); secs > 0 {
		settings.DefaultInterval = time.Duration(secs) * time.Second
	}
	settings.UserID = s.configStore.GetString(keyUserID)

	return settings
}

// GetKey returns the display value for a single key.
func (s *SettingsService) GetKey(key string) (string, error) {
	if !isKnownKey(key) {
		return "", unknownKeyError(key)
	}
	return s.displayValue(key), nil
}

// SetKey validates value and persists it under key. An empty value
// deletes the key so the stored file only carries explicit choices.
func (s *SettingsService) SetKey(key, value string) error {
	if !isKnownKey(key) {
		return unknownKeyError(key)
	}

	if value == "" {
		return s.configStore.Delete(key)
	}

	switch key {
	case keyDefaultPeriod:
		period, err := domain.ParsePeriod(value)
		if err != nil {
			return err
		}
		return s.configStore.Set(key, period.String())
	case keyDefaultInterval:
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("%w: interval must be a positive integer, got %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, secs)
	default:
		return s.configStore.Set(key, value)
	}
}

// All returns display rows for every known key in a stable order.
func (s *SettingsService) All() []driving.SettingRow {
	rows := make([]driving.SettingRow, 0, len(settingsKeys))
	for _, key := range settingsKeys {
		rows = append(rows, driving.SettingRow{Key: key, Value: s.displayValue(key)})
	}
	return rows
}

// Path returns the backing configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// displayValue resolves the user-facing value for key: the effective
// value for keys with defaults, the stored value otherwise, and a
// placeholder when nothing is set. The session cookie is only ever
// shown masked.
func (s *SettingsService) displayValue(key string) string {
	switch key {
	case keyDefaultPeriod:
		return s.Get().DefaultPeriod.String()
	case keyDefaultInterval:
		return strconv.Itoa(int(s.Get().DefaultInterval.Seconds()))
	case keySessionCookie:
		if cookie := s.configStore.GetString(keySessionCookie); cookie != "" {
			return maskSecret(cookie)
		}
		return notSet
	default:
		if value := s.configStore.GetString(key); value != "" {
			return value
		}
		return notSet
	}
}

// maskSecret hides all but the last eight characters of a secret.
func maskSecret(value string) string {
	if len(value) <= 8 {
		return "****" + value
	}
	return "****" + value[len(value)-8:]
}

// isKnownKey reports whether key is one of the settings keys.
func isKnownKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

func unknownKeyError(key string) error {
	return fmt.Errorf("%w: unknown config key %q (valid: default_period, default_interval, user_id, session_cookie)",
		domain.ErrInvalidInput, key)
}
