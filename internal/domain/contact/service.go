package contact

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, accountID int) ([]Contact, error)
	Count(ctx context.Context, accountID int) (int, error)
	Get(ctx context.Context, accountID, contactID int) (Contact, error)
	Create(ctx context.Context, accountID int, in Input) (Contact, error)
	Update(ctx context.Context, accountID, contactID int, in Input) (Contact, error)
	Delete(ctx context.Context, accountID, contactID int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "contact_service"),
	}
}

func (s *Service) List(ctx context.Context, accountID int) ([]Contact, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) Count(ctx context.Context, accountID int) (int, error) {
	return s.repo.CountByAccount(ctx, accountID)
}

func (s *Service) Get(ctx context.Context, accountID, contactID int) (Contact, error) {
	return s.repo.Get(ctx, accountID, contactID)
}

func (s *Service) Create(ctx context.Context, accountID int, in Input) (Contact, error) {
	if err := validate(in); err != nil {
		return Contact{}, err
	}

	count, err := s.repo.CountByAccount(ctx, accountID)
	if err != nil {
		return Contact{}, fmt.Errorf("count contacts: %w", err)
	}
	if count >= MaxPerAccount {
		return Contact{}, ErrLimitReached
	}

	c := Contact{
		AccountID:    accountID,
		Name:         in.Name,
		Relationship: in.Relationship,
		Phone:        in.Phone,
		Email:        in.Email,
	}

	id, err := s.repo.Create(ctx, &c)
	if err != nil {
		return Contact{}, err
	}
	c.ID = id

	s.log.Info("emergency contact created", "account_id", accountID, "contact_id", id)
	return c, nil
}

func (s *Service) Update(ctx context.Context, accountID, contactID int, in Input) (Contact, error) {
	if err := validate(in); err != nil {
		return Contact{}, err
	}

	c, err := s.repo.Get(ctx, accountID, contactID)
	if err != nil {
		return Contact{}, err
	}

	c.Name = in.Name
	c.Relationship = in.Relationship
	c.Phone = in.Phone
	c.Email = in.Email

	if err := s.repo.Update(ctx, &c); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, accountID, contactID int) error {
	return s.repo.Delete(ctx, accountID, contactID)
}

func validate(in Input) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Relationship == "" {
		return fmt.Errorf("%w: relationship is required", ErrInvalidInput)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
