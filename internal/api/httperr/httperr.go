package httperr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"medshare/internal/crypto"
	"medshare/internal/domain/account"
	"medshare/internal/domain/contact"
	"medshare/internal/domain/medical"
)

// Domain maps domain sentinel errors onto HTTP status errors. Data-integrity
// failures (undecryptable or unparseable fields) surface as an opaque 500;
// the detail stays in the server logs.
func Domain(err error) error {
	switch {
	case errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, medical.ErrInvalidInput),
		errors.Is(err, contact.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, account.ErrInvalidAuth):
		return huma.Error401Unauthorized("invalid credentials")
	case errors.Is(err, account.ErrInactive):
		return huma.Error403Forbidden("account is inactive")
	case errors.Is(err, account.ErrEmailTaken):
		return huma.Error409Conflict("email is already registered")
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, medical.ErrNotFound),
		errors.Is(err, contact.ErrNotFound):
		return huma.Error404NotFound("not found")
	case errors.Is(err, contact.ErrLimitReached):
		return huma.Error409Conflict("emergency contact limit reached")
	case errors.Is(err, crypto.ErrDecrypt), errors.Is(err, crypto.ErrCodec):
		return huma.Error500InternalServerError("internal error")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
