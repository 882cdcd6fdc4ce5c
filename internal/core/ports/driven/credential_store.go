package driven

import "github.com/tripleten-tools/tripleten-cli/internal/core/domain"

// CredentialStore persists the browser-exported cookie jar.
// The jar is a flat name→value document owned entirely by the store;
// no TTL or expiry logic exists, staleness is discovered via a 401.
type CredentialStore interface {
	// Load reads the stored jar. A missing file yields an empty jar and
	// no error; unparseable content is logged and also yields an empty
	// jar. Only an I/O failure on a present file is an error.
	Load() (domain.Credentials, error)

	// Save writes the full jar atomically enough that a partial write
	// cannot corrupt a previously valid file. Creates the parent
	// directory if absent.
	Save(creds domain.Credentials) error

	// Path returns the cookie jar file path.
	Path() string
}
