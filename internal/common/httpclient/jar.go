package httpclient

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storedCookie is the on-disk representation of a session cookie
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// Jar is a persistent cookie jar scoped to the configured catalog server.
// Cookies set by the server (access token, CSRF token) are written to a
// file in the user config directory so that separate CLI invocations
// share the same session. The jar tracks a single host and does not do
// domain or path matching.
type Jar struct {
	mu      sync.Mutex
	path    string
	cookies map[string]*storedCookie
}

// OpenJar loads the jar at the given path, creating an empty jar if the
// file does not exist yet.
func OpenJar(path string) (*Jar, error) {
	j := &Jar{
		path:    path,
		cookies: make(map[string]*storedCookie),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return j, nil
		}
		return nil, errors.Wrap(err, "unable to read cookie jar")
	}

	var stored []*storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		// A corrupt jar is discarded rather than blocking every command
		log.Warn().Str("path", path).Err(err).Msg("discarding unreadable cookie jar")
		return j, nil
	}
	for _, c := range stored {
		j.cookies[c.Name] = c
	}
	return j, nil
}

// SetCookies implements http.CookieJar. Expired cookies and cookies with
// MaxAge < 0 are removed; everything else is merged and persisted.
func (j *Jar) SetCookies(_ *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(j.cookies, c.Name)
			continue
		}
		sc := &storedCookie{Name: c.Name, Value: c.Value, Expires: c.Expires}
		if c.MaxAge > 0 {
			sc.Expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.cookies[c.Name] = sc
	}

	if err := j.save(); err != nil {
		log.Warn().Str("path", j.path).Err(err).Msg("unable to persist cookie jar")
	}
}

// Cookies implements http.CookieJar
func (j *Jar) Cookies(_ *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []*http.Cookie
	for _, c := range j.cookies {
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			continue
		}
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

// Value returns the value of the named cookie, or "" if it is absent or
// expired.
func (j *Jar) Value(name string) string {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, ok := j.cookies[name]
	if !ok {
		return ""
	}
	if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
		return ""
	}
	return c.Value
}

// Clear removes all cookies and deletes the jar file
func (j *Jar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cookies = make(map[string]*storedCookie)
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to remove cookie jar")
	}
	return nil
}

func (j *Jar) save() error {
	stored := make([]*storedCookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		stored = append(stored, c)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "unable to encode cookie jar")
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return errors.Wrap(err, "unable to create cookie jar directory")
	}
	if err := os.WriteFile(j.path, data, 0o600); err != nil {
		return errors.Wrap(err, "unable to write cookie jar")
	}
	return nil
}
