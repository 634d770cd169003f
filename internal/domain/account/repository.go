package account

import "context"

type Repository interface {
	// Create inserts the account and its empty medical record in one
	// transaction, so every registered account has a record row.
	Create(ctx context.Context, acc *Account) (int, error)
	FindByID(ctx context.Context, id int) (Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
	// FindByPublicID resolves an opaque public identifier regardless of the
	// active flag; the caller decides how inactivity is surfaced.
	FindByPublicID(ctx context.Context, publicID string) (Account, error)
	UpdateProfile(ctx context.Context, acc *Account) error
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
	// SetPublicAccess writes the public identifier and password hash in one
	// statement; ClearPublicAccess removes both together.
	SetPublicAccess(ctx context.Context, id int, publicID, passwordHash string) error
	ClearPublicAccess(ctx context.Context, id int) error
	// Deactivate soft-deletes: the row and its public identifier remain so
	// later public-link lookups can tell "deactivated" from "never existed".
	Deactivate(ctx context.Context, id int) error
}
