package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CredentialStore = (*Store)(nil)

// Store persists the cookie jar as a JSON document on disk.
// The jar file lives next to config.toml under the user config
// directory and holds plain name/value pairs as exported from the
// browser. File permissions are restricted to the owner since the
// values are session secrets.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a credential store rooted at the given directory.
// If dir is empty, defaults to the tripleten-cli directory under the
// user config directory. The directory is created if absent.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get user config directory: %w", err)
		}
		dir = filepath.Join(base, "tripleten-cli")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create credential directory: %w", err)
	}

	return &Store{
		path: filepath.Join(dir, "cookies.json"),
	}, nil
}

// Load reads the jar from disk. A missing file is the normal first-run
// state and yields an empty jar. Malformed JSON is downgraded to an
// empty jar after a warning so a corrupted file never wedges the CLI;
// the next successful login overwrites it.
func (s *Store) Load() (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Credentials{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read cookie jar: %w", domain.ErrStorage, err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		logger.Warn("Cookie jar %s is malformed, treating as empty: %v", s.path, err)
		return domain.Credentials{}, nil
	}
	if creds == nil {
		creds = domain.Credentials{}
	}

	return creds, nil
}

// Save replaces the jar on disk. The document is written to a
// temporary file in the same directory and renamed into place, so a
// crash mid-write leaves the previous jar intact.
func (s *Store) Save(creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cookie jar: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: create credential directory: %w", domain.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, "cookies-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temporary jar: %w", domain.ErrStorage, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write cookie jar: %w", domain.ErrStorage, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: set jar permissions: %w", domain.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close temporary jar: %w", domain.ErrStorage, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: replace cookie jar: %w", domain.ErrStorage, err)
	}

	logger.Debug("Saved %d cookies to %s", len(creds), s.path)
	return nil
}

// Path returns the cookie jar file path.
func (s *Store) Path() string {
	return s.path
}
