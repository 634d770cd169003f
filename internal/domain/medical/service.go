package medical

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
)

type Servicer interface {
	Get(ctx context.Context, accountID int) (Info, error)
	GetForViewer(ctx context.Context, accountID int) (Info, error)
	HasData(ctx context.Context, accountID int) (bool, error)
	Update(ctx context.Context, accountID int, upd Update) (Info, error)
	Clear(ctx context.Context, accountID int) error
}

type Service struct {
	repo   Repository
	cipher *crypto.Cipher
	log    *slog.Logger
}

func NewService(repo Repository, cipher *crypto.Cipher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "medical_service"),
	}
}

// Get returns the decrypted record, creating the empty row on first read.
// A field that exists but cannot be decrypted is a hard failure, never an
// empty list.
func (s *Service) Get(ctx context.Context, accountID int) (Info, error) {
	rec, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if err := s.repo.CreateEmpty(ctx, accountID); err != nil {
				return Info{}, fmt.Errorf("create empty record: %w", err)
			}
			return Info{
				Allergies:   []string{},
				Medications: []string{},
				Conditions:  []string{},
				Surgeries:   []string{},
			}, nil
		}
		return Info{}, err
	}

	return s.decrypt(rec)
}

// GetForViewer is the read-only variant used by the public access path: a
// missing row yields an empty view instead of creating one, and decryption
// failures stay hard failures.
func (s *Service) GetForViewer(ctx context.Context, accountID int) (Info, error) {
	rec, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Info{
				Allergies:   []string{},
				Medications: []string{},
				Conditions:  []string{},
				Surgeries:   []string{},
			}, nil
		}
		return Info{}, err
	}
	return s.decrypt(rec)
}

// HasData reports whether the record holds anything at all, without
// decrypting. The empty row every account starts with does not count.
func (s *Service) HasData(ctx context.Context, accountID int) (bool, error) {
	rec, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return rec.BloodType != nil ||
		!rec.Allergies.Empty() || !rec.Medications.Empty() ||
		!rec.Conditions.Empty() || !rec.Surgeries.Empty(), nil
}

func (s *Service) Update(ctx context.Context, accountID int, upd Update) (Info, error) {
	if !ValidBloodType(upd.BloodType) {
		return Info{}, fmt.Errorf("%w: unknown blood type", ErrInvalidInput)
	}

	rec := Record{AccountID: accountID, BloodType: upd.BloodType}

	var err error
	if rec.Allergies, err = s.cipher.EncryptJSON(orEmpty(upd.Allergies)); err != nil {
		return Info{}, fmt.Errorf("encrypt allergies: %w", err)
	}
	if rec.Medications, err = s.cipher.EncryptJSON(orEmpty(upd.Medications)); err != nil {
		return Info{}, fmt.Errorf("encrypt medications: %w", err)
	}
	if rec.Conditions, err = s.cipher.EncryptJSON(orEmpty(upd.Conditions)); err != nil {
		return Info{}, fmt.Errorf("encrypt conditions: %w", err)
	}
	if rec.Surgeries, err = s.cipher.EncryptJSON(orEmpty(upd.Surgeries)); err != nil {
		return Info{}, fmt.Errorf("encrypt surgeries: %w", err)
	}

	if err := s.repo.Update(ctx, &rec); err != nil {
		return Info{}, err
	}

	s.log.Info("medical record updated", "account_id", accountID)
	return s.decrypt(rec)
}

func (s *Service) Clear(ctx context.Context, accountID int) error {
	if err := s.repo.Clear(ctx, accountID); err != nil {
		return err
	}
	s.log.Info("medical record cleared", "account_id", accountID)
	return nil
}

func (s *Service) decrypt(rec Record) (Info, error) {
	info := Info{
		BloodType: rec.BloodType,
		UpdatedAt: rec.UpdatedAt,
	}

	fields := []struct {
		name string
		src  crypto.Field
		dst  *[]string
	}{
		{"allergies", rec.Allergies, &info.Allergies},
		{"medications", rec.Medications, &info.Medications},
		{"conditions", rec.Conditions, &info.Conditions},
		{"surgeries", rec.Surgeries, &info.Surgeries},
	}

	for _, f := range fields {
		if err := s.cipher.DecryptJSON(f.src, f.dst); err != nil {
			s.log.Error("medical field unreadable",
				"account_id", rec.AccountID, "field", f.name, "error", err)
			return Info{}, fmt.Errorf("decrypt %s: %w", f.name, err)
		}
		if *f.dst == nil {
			*f.dst = []string{}
		}
	}

	return info, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
