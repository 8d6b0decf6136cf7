package httpclient

// Configurator provides the client configuration needed to reach the
// catalog server and to track the signed-in user between invocations.
type Configurator interface {
	// GetServerURL returns the base URL of the catalog server
	GetServerURL() string

	// GetUsername returns the stored username, or "" when signed out
	GetUsername() string

	// SetUsername stores the username of the signed-in user
	SetUsername(username string) error

	// ClearSession drops the stored username
	ClearSession() error

	// CookieJarPath returns the path of the persistent cookie jar file
	CookieJarPath() string
}

// RequestDoer is the transport interface consumed by the typed catalog
// client. It is satisfied by Client and by test doubles.
type RequestDoer interface {
	// DoRequest makes an HTTP request with the given options
	DoRequest(opts RequestOptions) ([]byte, error)

	// ClearSession drops the stored username and the cookie jar
	ClearSession()
}

// Verify that Client implements the RequestDoer interface
var _ RequestDoer = &Client{}
