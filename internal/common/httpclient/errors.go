package httpclient

import "github.com/cataloghq/catman/internal/common/apperrors"

var (
	// ErrNetwork indicates no response was obtained from the server
	ErrNetwork = apperrors.New("network error: could not connect to the server")

	// ErrSessionExpired indicates the server rejected the stored session
	ErrSessionExpired = apperrors.New("session expired or not logged in. Run \"catman login\" to sign in")

	// ErrServer indicates a non-2xx response carrying a server message
	ErrServer = apperrors.New("request failed")

	// ErrNotFound indicates a 404 response for the requested resource
	ErrNotFound = ErrServer.New("not found")
)
