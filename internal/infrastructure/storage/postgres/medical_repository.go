package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medshare/internal/domain/medical"
)

type MedicalRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMedicalRepository(pool *pgxpool.Pool, log *slog.Logger) *MedicalRepository {
	return &MedicalRepository{
		pool: pool,
		log:  log.With("component", "medical_repository"),
	}
}

func (r *MedicalRepository) Get(ctx context.Context, accountID int) (medical.Record, error) {
	var rec medical.Record
	err := r.pool.QueryRow(ctx,
		`SELECT id, account_id, blood_type,
		        allergies_ciphertext, allergies_iv,
		        medications_ciphertext, medications_iv,
		        conditions_ciphertext, conditions_iv,
		        surgeries_ciphertext, surgeries_iv,
		        updated_at
		 FROM medical_records WHERE account_id = $1`,
		accountID,
	).Scan(
		&rec.ID, &rec.AccountID, &rec.BloodType,
		&rec.Allergies.Ciphertext, &rec.Allergies.IV,
		&rec.Medications.Ciphertext, &rec.Medications.IV,
		&rec.Conditions.Ciphertext, &rec.Conditions.IV,
		&rec.Surgeries.Ciphertext, &rec.Surgeries.IV,
		&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return medical.Record{}, medical.ErrNotFound
		}
		r.log.Error("failed to get medical record", "account_id", accountID, "error", err)
		return medical.Record{}, fmt.Errorf("get medical record: %w", err)
	}
	return rec, nil
}

func (r *MedicalRepository) CreateEmpty(ctx context.Context, accountID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO medical_records (account_id) VALUES ($1)`, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// A concurrent first read already created it.
			return nil
		}
		r.log.Error("failed to create medical record", "account_id", accountID, "error", err)
		return fmt.Errorf("create medical record: %w", err)
	}
	return nil
}

// Update writes every field pair and the blood type in one statement, so a
// row can never mix ciphertext and IV from different writes.
func (r *MedicalRepository) Update(ctx context.Context, rec *medical.Record) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE medical_records
		 SET blood_type = $1,
		     allergies_ciphertext = $2, allergies_iv = $3,
		     medications_ciphertext = $4, medications_iv = $5,
		     conditions_ciphertext = $6, conditions_iv = $7,
		     surgeries_ciphertext = $8, surgeries_iv = $9,
		     updated_at = NOW()
		 WHERE account_id = $10`,
		rec.BloodType,
		rec.Allergies.Ciphertext, rec.Allergies.IV,
		rec.Medications.Ciphertext, rec.Medications.IV,
		rec.Conditions.Ciphertext, rec.Conditions.IV,
		rec.Surgeries.Ciphertext, rec.Surgeries.IV,
		rec.AccountID)
	if err != nil {
		r.log.Error("failed to update medical record", "account_id", rec.AccountID, "error", err)
		return fmt.Errorf("update medical record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return medical.ErrNotFound
	}
	return nil
}

func (r *MedicalRepository) Clear(ctx context.Context, accountID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE medical_records
		 SET blood_type = NULL,
		     allergies_ciphertext = NULL, allergies_iv = NULL,
		     medications_ciphertext = NULL, medications_iv = NULL,
		     conditions_ciphertext = NULL, conditions_iv = NULL,
		     surgeries_ciphertext = NULL, surgeries_iv = NULL,
		     updated_at = NOW()
		 WHERE account_id = $1`,
		accountID)
	if err != nil {
		r.log.Error("failed to clear medical record", "account_id", accountID, "error", err)
		return fmt.Errorf("clear medical record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return medical.ErrNotFound
	}
	return nil
}
