package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
	"medshare/internal/domain/account"
	"medshare/internal/notify"
)

const minPasswordLen = 6

type Servicer interface {
	Request(ctx context.Context, email string) error
	Redeem(ctx context.Context, tok, newPassword string) error
	Verify(ctx context.Context, tok string) error
}

type Service struct {
	repo          Repository
	accounts      account.Repository
	mailer        notify.Mailer
	publicBaseURL string
	log           *slog.Logger
	now           func() time.Time
}

func NewService(repo Repository, accounts account.Repository, mailer notify.Mailer, publicBaseURL string, log *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		accounts:      accounts,
		mailer:        mailer,
		publicBaseURL: publicBaseURL,
		log:           log.With("component", "token_service"),
		now:           time.Now,
	}
}

// Request issues a reset token for the account behind email. An unknown or
// inactive email still returns nil so the endpoint does not reveal which
// addresses are registered; the distinction lives only in the logs.
func (s *Service) Request(ctx context.Context, email string) error {
	acc, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			s.log.Info("reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("find account: %w", err)
	}
	if !acc.Active {
		s.log.Info("reset requested for inactive account", "account_id", acc.ID)
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	tok := hex.EncodeToString(raw)

	if err := s.repo.Issue(ctx, acc.ID, tok, s.now().Add(TTL)); err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.publicBaseURL, tok)
	if err := s.mailer.SendPasswordReset(ctx, acc.Email, acc.FullName(), resetURL); err != nil {
		// Token stays valid; the user can retry the request.
		s.log.Warn("reset mail failed", "account_id", acc.ID, "error", err)
	}

	s.log.Info("reset token issued", "account_id", acc.ID)
	return nil
}

// Redeem validates the token and atomically swaps the password hash while
// consuming it.
func (s *Service) Redeem(ctx context.Context, tok, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", account.ErrInvalidInput, minPasswordLen)
	}

	rt, err := s.lookup(ctx, tok)
	if err != nil {
		return err
	}

	hash, err := crypto.HashSecret(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Redeem(ctx, rt.ID, rt.AccountID, hash); err != nil {
		return fmt.Errorf("redeem token: %w", err)
	}

	s.log.Info("reset token redeemed", "account_id", rt.AccountID)
	return nil
}

// Verify reports whether the token could currently be redeemed, without
// consuming it.
func (s *Service) Verify(ctx context.Context, tok string) error {
	_, err := s.lookup(ctx, tok)
	return err
}

func (s *Service) lookup(ctx context.Context, tok string) (ResetToken, error) {
	rt, err := s.repo.FindByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return ResetToken{}, ErrInvalidToken
		}
		return ResetToken{}, fmt.Errorf("find token: %w", err)
	}
	// Used is checked before expiry so a superseded token reports
	// "already used" even after it would have expired.
	if rt.Used {
		return ResetToken{}, ErrAlreadyUsed
	}
	if rt.Expired(s.now()) {
		return ResetToken{}, ErrExpired
	}
	if !rt.AccountActive {
		return ResetToken{}, ErrAccountInactive
	}
	return rt, nil
}
