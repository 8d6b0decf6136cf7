package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// CSRFCookieName is the cookie the server issues the CSRF token in
const CSRFCookieName = "csrf_access_token"

// CSRFHeaderName is the header the token is echoed back in on mutating
// requests
const CSRFHeaderName = "X-CSRF-TOKEN"

// RequestOptions contains options for making HTTP requests
type RequestOptions struct {
	Method      string
	Path        string
	QueryParams map[string]string
	Body        []byte
}

// Client makes HTTP requests to the catalog server. It owns the
// persistent cookie jar, attaches the CSRF header on mutating verbs,
// runs the activity indicator around every call, and maps authentication
// failures to a cleared local session.
type Client struct {
	config     Configurator
	httpClient *http.Client
	jar        *Jar
	indicator  Indicator
}

// NewClient creates a new HTTP client using the provided configuration
func NewClient(config Configurator) (*Client, error) {
	jar, err := OpenJar(config.CookieJarPath())
	if err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Jar: jar},
		jar:        jar,
		indicator:  NewIndicator(false),
	}, nil
}

// SetIndicator replaces the activity indicator. Pass NewIndicator(true)
// to silence it for machine-readable output.
func (c *Client) SetIndicator(ind Indicator) {
	c.indicator = ind
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// DoRequest makes an HTTP request with the given options
func (c *Client) DoRequest(opts RequestOptions) ([]byte, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = path.Join(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(opts.Method, u.String(), bytes.NewBuffer(opts.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	if isMutating(opts.Method) {
		if token := c.jar.Value(CSRFCookieName); token != "" {
			req.Header.Set(CSRFHeaderName, token)
		} else {
			// The server rejects the request if it requires the token
			log.Warn().Str("method", opts.Method).Str("path", opts.Path).
				Msg("CSRF cookie not found, sending request without CSRF header")
		}
	}

	c.indicator.Start(opts.Method + " /" + opts.Path)
	defer c.indicator.Stop()

	log.Debug().Str("request_id", requestID).Str("method", opts.Method).
		Str("url", u.String()).Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrNetwork.Err(err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, ErrNetwork.MsgErr("failed to read response body", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.ClearSession()
		return nil, ErrSessionExpired.SetStatusCode(resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		msg := serverMessage(body)
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound.New(msg).SetStatusCode(resp.StatusCode)
		}
		return nil, ErrServer.New(msg).SetStatusCode(resp.StatusCode)
	}

	return body, nil
}

// ClearSession drops the local session marker and the cookie jar. The
// transport calls it once per rejected call; the typed client calls it
// on logout so the cookies go away even when the server does not answer.
func (c *Client) ClearSession() {
	if err := c.config.ClearSession(); err != nil {
		log.Warn().Err(err).Msg("unable to clear stored username")
	}
	if err := c.jar.Clear(); err != nil {
		log.Warn().Err(err).Msg("unable to clear cookie jar")
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}

// serverMessage extracts the most specific error text the server
// provided: details, then error, then message.
func serverMessage(body []byte) string {
	for _, key := range []string{"details", "error", "message"} {
		if v := gjson.GetBytes(body, key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return "An unknown error occurred."
}
