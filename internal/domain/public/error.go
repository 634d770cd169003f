package public

import "errors"

var (
	// ErrNotFound: no account holds this identifier.
	ErrNotFound = errors.New("public link not found")
	// ErrGone: the identifier exists but its account was deactivated.
	ErrGone = errors.New("public link no longer available")
	// ErrNotConfigured: the account never set a public-access password.
	ErrNotConfigured = errors.New("public link not configured")
	// ErrUnauthorized: the supplied public-access password is wrong.
	ErrUnauthorized = errors.New("public access password incorrect")
)
