package driving

import "github.com/tripleten-tools/tripleten-cli/internal/core/domain"

// SettingRow is one key/value pair for settings display. Secret values
// arrive already masked.
type SettingRow struct {
	Key   string
	Value string
}

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the resolved settings. Missing or unparseable stored
	// values fall back to defaults, so the result is always usable.
	Get() domain.Settings

	// GetKey returns the display value for a single known key.
	GetKey(key string) (string, error)

	// SetKey validates and persists a single known key. An empty value
	// removes the key from the stored file.
	SetKey(key, value string) error

	// All returns display rows for every known key in a stable order.
	All() []SettingRow

	// Path returns the backing configuration file location.
	Path() string
}
