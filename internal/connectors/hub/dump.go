package hub

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// exchangeDump writes one file per HTTP exchange so a failing session
// can be inspected offline. Dump failures are logged and never affect
// the request path.
type exchangeDump struct {
	dir string
}

func newExchangeDump(dir string) (*exchangeDump, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create dump directory: %w", err)
	}
	return &exchangeDump{dir: dir}, nil
}

// Write records a completed exchange under a fresh UUID. Retried
// requests produce one file per attempt.
func (d *exchangeDump) Write(res *resty.Response) {
	path := filepath.Join(d.dir, uuid.New().String()+".txt")
	if err := os.WriteFile(path, []byte(formatExchange(res)), 0600); err != nil {
		logger.Warn("Failed to write exchange dump %s: %v", path, err)
		return
	}
	logger.Debug("Wrote exchange dump %s", path)
}

// 1: request method
// 2: request url
// 3: request headers ("Key: Value" format, cookies redacted)
// 4: response status
// 5: response headers
// 6: response body
const exchangeTemplate = `---- REQUEST ----

%s %s

%s

---- RESPONSE ----

%s

%s

%s
`

func formatExchange(res *resty.Response) string {
	var requestHeaders http.Header
	if res.Request.RawRequest != nil {
		requestHeaders = res.Request.RawRequest.Header
	}

	return fmt.Sprintf(
		exchangeTemplate,
		res.Request.Method, res.Request.URL,
		formatHeaders(requestHeaders),
		res.Status(),
		formatHeaders(res.Header()),
		res.String(),
	)
}

// formatHeaders renders headers one per line. Cookie values are
// session secrets and dumps exist to be attached to bug reports, so
// both cookie directions are redacted.
func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for key, values := range headers {
		for _, value := range values {
			if key == "Cookie" || key == "Set-Cookie" {
				value = "[redacted]"
			}
			out.WriteString(fmt.Sprintf("%s: %s\n", key, value))
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
