package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
	"medshare/internal/notify"
)

const (
	minPasswordLen       = 6
	minPublicPasswordLen = 6
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (int, error)
	Authenticate(ctx context.Context, email, password string) (Account, error)
	Get(ctx context.Context, id int) (Account, error)
	UpdateProfile(ctx context.Context, id int, req ProfileUpdate) (Account, error)
	ChangePassword(ctx context.Context, id int, current, next string) error
	EnablePublicAccess(ctx context.Context, id int, publicPassword string) (string, error)
	DisablePublicAccess(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    *string
	Phone     string
	BirthDate *time.Time
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	Gender    *string
	Phone     string
	BirthDate *time.Time
}

type Service struct {
	repo   Repository
	mailer notify.Mailer
	log    *slog.Logger
}

func NewService(repo Repository, mailer notify.Mailer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		log:    log.With("component", "account_service"),
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (int, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return 0, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLen {
		return 0, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if req.FirstName == "" {
		return 0, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if !ValidGender(req.Gender) {
		return 0, fmt.Errorf("%w: unknown gender", ErrInvalidInput)
	}

	hash, err := crypto.HashSecret(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	acc := &Account{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		Phone:        req.Phone,
		BirthDate:    req.BirthDate,
		Active:       true,
	}

	id, err := s.repo.Create(ctx, acc)
	if err != nil {
		return 0, err
	}

	// Notification failure never rolls back a completed registration.
	if err := s.mailer.SendWelcome(ctx, req.Email, acc.FullName()); err != nil {
		s.log.Warn("welcome mail failed", "account_id", id, "error", err)
	}

	s.log.Info("account registered", "account_id", id)
	return id, nil
}

// Authenticate folds an unknown email into ErrInvalidAuth so callers cannot
// enumerate registered addresses; a storage failure stays a failure.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Account{}, ErrInvalidAuth
		}
		return Account{}, fmt.Errorf("find account: %w", err)
	}
	if !acc.Active {
		return Account{}, ErrInactive
	}
	if !crypto.VerifySecret(password, acc.PasswordHash) {
		return Account{}, ErrInvalidAuth
	}
	return acc, nil
}

func (s *Service) Get(ctx context.Context, id int) (Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id int, req ProfileUpdate) (Account, error) {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Account{}, err
	}

	if req.FirstName == "" {
		return Account{}, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if !ValidGender(req.Gender) {
		return Account{}, fmt.Errorf("%w: unknown gender", ErrInvalidInput)
	}

	acc.FirstName = req.FirstName
	acc.LastName = req.LastName
	acc.Gender = req.Gender
	acc.Phone = req.Phone
	acc.BirthDate = req.BirthDate

	if err := s.repo.UpdateProfile(ctx, &acc); err != nil {
		return Account{}, err
	}
	return acc, nil
}

func (s *Service) ChangePassword(ctx context.Context, id int, current, next string) error {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !crypto.VerifySecret(current, acc.PasswordHash) {
		return ErrInvalidAuth
	}
	if len(next) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := crypto.HashSecret(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePasswordHash(ctx, id, hash)
}

// EnablePublicAccess sets (or resets) the public-access password and returns
// the public identifier. The identifier is generated once and kept across
// password changes so printed QR codes stay valid.
func (s *Service) EnablePublicAccess(ctx context.Context, id int, publicPassword string) (string, error) {
	if len(publicPassword) < minPublicPasswordLen {
		return "", fmt.Errorf("%w: public access password must be at least %d characters", ErrInvalidInput, minPublicPasswordLen)
	}

	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	publicID := uuid.NewString()
	if acc.PublicID != nil {
		publicID = *acc.PublicID
	}

	hash, err := crypto.HashSecret(publicPassword)
	if err != nil {
		return "", fmt.Errorf("hash public password: %w", err)
	}

	if err := s.repo.SetPublicAccess(ctx, id, publicID, hash); err != nil {
		return "", err
	}

	s.log.Info("public access enabled", "account_id", id)
	return publicID, nil
}

func (s *Service) DisablePublicAccess(ctx context.Context, id int) error {
	if err := s.repo.ClearPublicAccess(ctx, id); err != nil {
		return err
	}
	s.log.Info("public access disabled", "account_id", id)
	return nil
}

func (s *Service) Deactivate(ctx context.Context, id int) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("account deactivated", "account_id", id)
	return nil
}
