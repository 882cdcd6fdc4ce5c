package hub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.LeaderboardGateway = (*Client)(nil)

// Client is the hub API gateway. It owns the transport, keeps the
// credential store and the in-memory cookie set in step, and
// normalises every payload into domain types before handing it to
// the core.
type Client struct {
	transport *Transport
	store     driven.CredentialStore
}

// New creates a hub client backed by the given credential store.
// Stored cookies are attached immediately; an empty jar is fine, the
// client stays usable for login and unauthenticated probes.
func New(store driven.CredentialStore, opts ...TransportOption) (*Client, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	transport := NewTransport(opts...)
	transport.SetCredentials(creds)

	if len(creds) > 0 {
		logger.Debug("Loaded %d cookies from %s", len(creds), store.Path())
	}

	return &Client{
		transport: transport,
		store:     store,
	}, nil
}

// Login replaces the session with cookies parsed from a raw Cookie
// header line and persists them. The in-memory session is updated
// before persistence, so a failed write still leaves a working
// session; the error tells the caller the cookies will not survive
// the process.
func (c *Client) Login(cookieHeader string) (int, error) {
	creds := domain.ParseCookieHeader(cookieHeader)

	c.transport.SetCredentials(creds)
	logger.Info("Set %d cookies for authentication", len(creds))

	if err := c.store.Save(creds); err != nil {
		return len(creds), fmt.Errorf("save credentials: %w", err)
	}

	return len(creds), nil
}

// SetCredentials replaces the cookies attached to every subsequent
// request. This is the hot-reload path for watch mode; nothing is
// persisted.
func (c *Client) SetCredentials(creds domain.Credentials) {
	c.transport.SetCredentials(creds)
}

// apiError builds an APIError from a non-success response, preferring
// the hub's own message field when the body carries one.
func apiError(resp *resty.Response) *APIError {
	message := http.StatusText(resp.StatusCode())

	if body := resp.Body(); len(body) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			message = payload.Message
		} else if text := strings.TrimSpace(string(body)); text != "" {
			message = text
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    message,
		URL:        resp.Request.URL,
	}
}
