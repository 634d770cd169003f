package public

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
	"medshare/internal/domain/account"
	"medshare/internal/domain/contact"
	"medshare/internal/domain/medical"
)

type Servicer interface {
	CheckLink(ctx context.Context, publicID string) (LinkInfo, error)
	GetStats(ctx context.Context, publicID string) (Stats, error)
	Authorize(ctx context.Context, publicID, secret string) (Viewer, error)
	GetProfile(ctx context.Context, v Viewer) (Profile, error)
}

type Service struct {
	accounts account.Repository
	medical  medical.Servicer
	contacts contact.Servicer
	log      *slog.Logger
	now      func() time.Time
}

func NewService(accounts account.Repository, med medical.Servicer, contacts contact.Servicer, log *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		medical:  med,
		contacts: contacts,
		log:      log.With("component", "public_service"),
		now:      time.Now,
	}
}

// CheckLink reports whether a link exists and requires a password, without
// touching any protected data.
func (s *Service) CheckLink(ctx context.Context, publicID string) (LinkInfo, error) {
	acc, err := s.resolve(ctx, publicID)
	if err != nil {
		return LinkInfo{}, err
	}
	if acc.PublicPasswordHash == nil {
		return LinkInfo{}, ErrNotConfigured
	}
	return LinkInfo{OwnerName: acc.FullName(), HasPassword: true}, nil
}

// GetStats is the passwordless preview: owner name, age, contact count, and
// whether any medical data exists, but never the data itself. A link with no
// access password configured answers not found, same as a missing one.
func (s *Service) GetStats(ctx context.Context, publicID string) (Stats, error) {
	acc, err := s.resolve(ctx, publicID)
	if err != nil {
		return Stats{}, err
	}
	if acc.PublicPasswordHash == nil {
		s.log.Info("stats for unconfigured link", "account_id", acc.ID)
		return Stats{}, ErrNotFound
	}

	count, err := s.contacts.Count(ctx, acc.ID)
	if err != nil {
		return Stats{}, fmt.Errorf("count contacts: %w", err)
	}

	hasMedical, err := s.medical.HasData(ctx, acc.ID)
	if err != nil {
		return Stats{}, fmt.Errorf("check medical record: %w", err)
	}

	return Stats{
		FirstName:        acc.FirstName,
		LastName:         acc.LastName,
		FullName:         acc.FullName(),
		Age:              ageAt(acc.BirthDate, s.now()),
		ContactCount:     count,
		HasMedicalInfo:   hasMedical,
		RequiresPassword: true,
	}, nil
}

// Authorize runs the two-stage check: resolve the opaque identifier, then
// verify the public-access password. Success yields a Viewer bound to this
// request only; no credential of any kind is issued.
func (s *Service) Authorize(ctx context.Context, publicID, secret string) (Viewer, error) {
	acc, err := s.resolve(ctx, publicID)
	if err != nil {
		return Viewer{}, err
	}
	if acc.PublicPasswordHash == nil {
		s.log.Info("public access to unconfigured link", "account_id", acc.ID)
		return Viewer{}, ErrNotConfigured
	}
	if !crypto.VerifySecret(secret, *acc.PublicPasswordHash) {
		s.log.Info("public access password mismatch", "account_id", acc.ID)
		return Viewer{}, ErrUnauthorized
	}

	s.log.Info("public access granted", "account_id", acc.ID)
	return Viewer{AccountID: acc.ID}, nil
}

// GetProfile assembles the merged emergency view for an authorized viewer.
func (s *Service) GetProfile(ctx context.Context, v Viewer) (Profile, error) {
	acc, err := s.accounts.FindByID(ctx, v.AccountID)
	if err != nil {
		return Profile{}, fmt.Errorf("load account: %w", err)
	}

	med, err := s.medical.GetForViewer(ctx, v.AccountID)
	if err != nil {
		return Profile{}, fmt.Errorf("load medical info: %w", err)
	}

	contacts, err := s.contacts.List(ctx, v.AccountID)
	if err != nil {
		return Profile{}, fmt.Errorf("load contacts: %w", err)
	}

	now := s.now()
	return Profile{
		FirstName:  acc.FirstName,
		LastName:   acc.LastName,
		FullName:   acc.FullName(),
		Gender:     acc.Gender,
		Phone:      acc.Phone,
		BirthDate:  acc.BirthDate,
		Age:        ageAt(acc.BirthDate, now),
		Medical:    med,
		Contacts:   contacts,
		AccessedAt: now,
	}, nil
}

// resolve maps an identifier to its account. A deactivated account resolves
// to ErrGone; the distinction from ErrNotFound lives in the logs, while the
// HTTP layer keeps both responses enumeration-resistant. Storage failures
// pass through wrapped, never as a lookup miss.
func (s *Service) resolve(ctx context.Context, publicID string) (account.Account, error) {
	acc, err := s.accounts.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			s.log.Info("public link lookup miss")
			return account.Account{}, ErrNotFound
		}
		return account.Account{}, fmt.Errorf("find public link: %w", err)
	}
	if !acc.Active {
		s.log.Info("public link on deactivated account", "account_id", acc.ID)
		return account.Account{}, ErrGone
	}
	return acc, nil
}

func ageAt(birth *time.Time, now time.Time) *int {
	if birth == nil {
		return nil
	}
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}
