package token

import "time"

// TTL is how long a reset token stays redeemable.
const TTL = time.Hour

// ResetToken is single-use and time-boxed. Issuing a new token for an
// account marks every prior unused one as used, so at most one live token
// exists per account.
type ResetToken struct {
	ID        int
	AccountID int
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time

	// AccountActive is joined in at lookup time so redemption can reject
	// deactivated accounts without a second query.
	AccountActive bool
}

// Expired reports whether the token is past its expiry at the given time.
func (t ResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
