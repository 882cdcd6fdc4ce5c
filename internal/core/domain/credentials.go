package domain

import "strings"

// Credentials is the browser-exported cookie jar: cookie name to
// cookie value. The jar is replaced wholesale on login, never merged,
// and never expires locally; staleness is only discovered through a
// 401 from the hub.
type Credentials map[string]string

// ParseCookieHeader tokenizes a raw Cookie header string of the form
// "name=value; name2=value2" into a Credentials map. Values may
// themselves contain '='; only the first '=' of each token separates
// name from value. Tokens without '=' and pairs with an empty name or
// value are skipped. The parse is best-effort and never fails, even on
// malformed trailing fragments.
func ParseCookieHeader(header string) Credentials {
	creds := Credentials{}
	for _, token := range strings.Split(header, ";") {
		name, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		creds[name] = value
	}
	return creds
}
