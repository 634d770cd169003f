package token

import (
	"context"
	"time"
)

type Repository interface {
	// Issue supersedes all unused tokens for the account and inserts the new
	// one in a single transaction.
	Issue(ctx context.Context, accountID int, tok string, expiresAt time.Time) error
	FindByToken(ctx context.Context, tok string) (ResetToken, error)
	// Redeem updates the account password hash and marks the token used in a
	// single transaction; neither write lands without the other.
	Redeem(ctx context.Context, tokenID, accountID int, passwordHash string) error
}
