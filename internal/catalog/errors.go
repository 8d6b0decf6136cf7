package catalog

import "github.com/cataloghq/catman/internal/common/apperrors"

var (
	// ErrInvalidDraft indicates the draft failed client-side validation
	// and no request was made
	ErrInvalidDraft = apperrors.New("catalog fields failed validation")

	// ErrInvalidID indicates a catalog id that is not a positive integer
	ErrInvalidID = apperrors.New("Please enter a valid positive Catalog ID.")

	// ErrCredentialsRequired indicates a login attempt with a missing
	// username or password; no request is made
	ErrCredentialsRequired = apperrors.New("username or email and password are required")
)
