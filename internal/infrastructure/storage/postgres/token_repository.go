package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medshare/internal/domain/token"
)

type TokenRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTokenRepository(pool *pgxpool.Pool, log *slog.Logger) *TokenRepository {
	return &TokenRepository{
		pool: pool,
		log:  log.With("component", "token_repository"),
	}
}

// Issue supersedes the account's outstanding tokens and inserts the new one
// atomically, so at most one unused unexpired token exists per account.
func (r *TokenRepository) Issue(ctx context.Context, accountID int, tok string, expiresAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE
		 WHERE account_id = $1 AND NOT used`,
		accountID); err != nil {
		r.log.Error("failed to supersede tokens", "account_id", accountID, "error", err)
		return fmt.Errorf("supersede tokens: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO password_reset_tokens (account_id, token, expires_at)
		 VALUES ($1, $2, $3)`,
		accountID, tok, expiresAt); err != nil {
		r.log.Error("failed to insert token", "account_id", accountID, "error", err)
		return fmt.Errorf("insert token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *TokenRepository) FindByToken(ctx context.Context, tok string) (token.ResetToken, error) {
	var rt token.ResetToken
	err := r.pool.QueryRow(ctx,
		`SELECT t.id, t.account_id, t.token, t.expires_at, t.used, t.created_at, a.active
		 FROM password_reset_tokens t
		 JOIN accounts a ON a.id = t.account_id
		 WHERE t.token = $1`,
		tok,
	).Scan(&rt.ID, &rt.AccountID, &rt.Token, &rt.ExpiresAt, &rt.Used, &rt.CreatedAt, &rt.AccountActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return token.ResetToken{}, token.ErrInvalidToken
		}
		r.log.Error("failed to find token", "error", err)
		return token.ResetToken{}, fmt.Errorf("find token: %w", err)
	}
	return rt, nil
}

// Redeem commits the password change and the used flag together; a dropped
// connection mid-redeem leaves both untouched.
func (r *TokenRepository) Redeem(ctx context.Context, tokenID, accountID int, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE
		 WHERE id = $1 AND NOT used`,
		tokenID)
	if err != nil {
		r.log.Error("failed to consume token", "token_id", tokenID, "error", err)
		return fmt.Errorf("consume token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Lost the race with another redemption of the same token.
		return token.ErrAlreadyUsed
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, accountID); err != nil {
		r.log.Error("failed to update password", "account_id", accountID, "error", err)
		return fmt.Errorf("update password: %w", err)
	}

	return tx.Commit(ctx)
}
