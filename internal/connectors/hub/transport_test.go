package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// newTestTransport builds a transport against the given server with
// throttling neutralised and retry backoff shortened.
func newTestTransport(serverURL string, opts ...TransportOption) *Transport {
	base := []TransportOption{
		WithBaseURL(serverURL),
		WithRetryWaitTime(time.Millisecond),
		WithRateLimit(1000, 1000),
	}
	return NewTransport(append(base, opts...)...)
}

func TestTransport_BrowserHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	_, err := transport.Do(context.Background(), http.MethodGet, "/probe", nil, nil)
	require.NoError(t, err)

	for name, want := range browserHeaders {
		assert.Equal(t, want, got.Get(name), "header %s", name)
	}
}

func TestTransport_CookiesSortedByName(t *testing.T) {
	var cookieHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieHeader = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	transport.SetCredentials(domain.Credentials{
		"sessionid": "abc",
		"csrftoken": "xyz",
		"locale":    "en",
	})

	_, err := transport.Do(context.Background(), http.MethodGet, "/probe", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "csrftoken=xyz; locale=en; sessionid=abc", cookieHeader)
}

func TestTransport_SetCredentialsReplaces(t *testing.T) {
	var cookieHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieHeader = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	transport.SetCredentials(domain.Credentials{"old": "1", "stale": "2"})
	transport.SetCredentials(domain.Credentials{"sessionid": "new"})

	_, err := transport.Do(context.Background(), http.MethodGet, "/probe", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "sessionid=new", cookieHeader)
}

func TestTransport_RetryOnServerError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	resp, err := transport.Do(context.Background(), http.MethodGet, "/flaky", nil, nil)

	// Exhausted retries surface the final response, not an error.
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1+MaxRetries), attempts.Load())
}

func TestTransport_RetryStopsOnSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	resp, err := transport.Do(context.Background(), http.MethodGet, "/flaky", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), attempts.Load())
}

func TestTransport_NoRetryOn401(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	_, err := transport.Do(context.Background(), http.MethodGet, "/private", nil, nil)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Equal(t, int32(1), attempts.Load(), "401 must not be retried")
}

func TestTransport_NoRetryOnPost(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	resp, err := transport.Do(context.Background(), http.MethodPost, "/mutate", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), attempts.Load(), "non-idempotent methods must not be retried")
}

func TestTransport_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	transport := newTestTransport(serverURL)

	resp, err := transport.Do(context.Background(), http.MethodGet, "/probe", nil, nil)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotEmpty(t, netErr.URL)
}

func TestTransport_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transport.Do(ctx, http.MethodGet, "/probe", nil, nil)

	assert.Error(t, err)
}

func TestTransport_QueryAndExtraHeaders(t *testing.T) {
	var gotQuery, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("period")
		gotReferer = r.Header.Get("Referer")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	_, err := transport.Do(context.Background(), http.MethodGet, "/probe",
		map[string]string{"period": "7_days"},
		map[string]string{"Referer": "https://example.test/page"},
	)
	require.NoError(t, err)

	assert.Equal(t, "7_days", gotQuery)
	assert.Equal(t, "https://example.test/page", gotReferer)
}

func TestTransport_DebugDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	dumpDir := t.TempDir()
	transport := newTestTransport(server.URL, WithDebugDump(dumpDir))
	transport.SetCredentials(domain.Credentials{"sessionid": "topsecretvalue"})

	_, err := transport.Do(context.Background(), http.MethodGet, "/probe", nil, nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dumpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dumpDir, entries[0].Name()))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "---- REQUEST ----")
	assert.Contains(t, content, "---- RESPONSE ----")
	assert.Contains(t, content, `{"ok":true}`)
	assert.Contains(t, content, "[redacted]")
	assert.False(t, strings.Contains(content, "topsecretvalue"),
		"cookie values must never reach dump files")
}

func TestTransport_DumpOnePerAttempt(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dumpDir := t.TempDir()
	transport := newTestTransport(server.URL, WithDebugDump(dumpDir))

	_, err := transport.Do(context.Background(), http.MethodGet, "/flaky", nil, nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dumpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
