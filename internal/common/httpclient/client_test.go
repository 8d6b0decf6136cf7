package httpclient

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	serverURL  string
	username   string
	jarPath    string
	clearCalls int
}

func (c *testConfig) GetServerURL() string  { return c.serverURL }
func (c *testConfig) GetUsername() string   { return c.username }
func (c *testConfig) CookieJarPath() string { return c.jarPath }

func (c *testConfig) SetUsername(username string) error {
	c.username = username
	return nil
}

func (c *testConfig) ClearSession() error {
	c.username = ""
	c.clearCalls++
	return nil
}

func newTestClient(t *testing.T, serverURL string) (*Client, *testConfig) {
	t.Helper()
	cfg := &testConfig{
		serverURL: serverURL,
		username:  "tester",
		jarPath:   filepath.Join(t.TempDir(), "cookies.json"),
	}
	client, err := NewClient(cfg)
	require.NoError(t, err)
	client.SetIndicator(NewIndicator(true))
	return client, cfg
}

func TestDoRequestSetsHeaders(t *testing.T) {
	var gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	body, err := client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs"})
	require.NoError(t, err)
	assert.Equal(t, `{"message": "ok"}`, string(body))
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoRequestCSRFHeader(t *testing.T) {
	var gotCSRF []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = append(gotCSRF, r.Header.Get(CSRFHeaderName))
		if r.URL.Path == "/api/login" {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "csrf-123"})
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	// No cookie yet; the mutating request goes out without the header
	_, err := client.DoRequest(RequestOptions{Method: http.MethodPost, Path: "api/login"})
	require.NoError(t, err)
	assert.Empty(t, gotCSRF[0])

	// The login response set the cookie; subsequent mutating verbs echo it
	_, err = client.DoRequest(RequestOptions{Method: http.MethodDelete, Path: "api/catalogs/1"})
	require.NoError(t, err)
	assert.Equal(t, "csrf-123", gotCSRF[1])

	// GET requests never carry the header
	_, err = client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs"})
	require.NoError(t, err)
	assert.Empty(t, gotCSRF[2])
}

func TestDoRequestSessionExpired(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message": "Authentication Failed"}`))
		}))

		client, cfg := newTestClient(t, srv.URL)
		_, err := client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs"})
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, cfg.username)
		assert.Equal(t, 1, cfg.clearCalls)
		srv.Close()
	}
}

func TestDoRequestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Validation Error", "details": "Name cannot exceed 30 characters."}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.DoRequest(RequestOptions{Method: http.MethodPost, Path: "api/catalogs"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, "Name cannot exceed 30 characters.", err.Error())
}

func TestDoRequestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found", "details": "Catalog with ID 99 not found."}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs/99"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Catalog with ID 99 not found.", err.Error())
}

func TestDoRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // no listener behind the URL anymore

	client, _ := newTestClient(t, srv.URL)
	_, err := client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs"})
	assert.ErrorIs(t, err, ErrNetwork)

	// Each failure derives its own error; the sentinel keeps its message
	// and never accumulates causes across calls.
	_, err2 := client.DoRequest(RequestOptions{Method: http.MethodGet, Path: "api/catalogs"})
	assert.ErrorIs(t, err2, ErrNetwork)
	assert.NotErrorIs(t, err2, err)
	assert.Equal(t, "network error: could not connect to the server", ErrNetwork.Error())
	assert.Empty(t, ErrNetwork.Unwrap())
}

func TestJarPersistsAcrossClients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login" {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "csrf-456"})
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	jarPath := filepath.Join(t.TempDir(), "cookies.json")
	cfg := &testConfig{serverURL: srv.URL, jarPath: jarPath}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	client.SetIndicator(NewIndicator(true))
	_, err = client.DoRequest(RequestOptions{Method: http.MethodPost, Path: "api/login"})
	require.NoError(t, err)

	// A fresh client picks the cookie up from disk
	reopened, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, "csrf-456", reopened.jar.Value(CSRFCookieName))

	require.NoError(t, reopened.jar.Clear())
	assert.Empty(t, reopened.jar.Value(CSRFCookieName))
}
