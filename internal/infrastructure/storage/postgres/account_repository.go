package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medshare/internal/domain/account"
)

const uniqueViolation = "23505"

type AccountRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAccountRepository(pool *pgxpool.Pool, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		pool: pool,
		log:  log.With("component", "account_repository"),
	}
}

const accountColumns = `
	id, email, password_hash, first_name, last_name, gender, phone, birth_date,
	active, public_id, public_password_hash, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, first_name, last_name, gender, phone, birth_date, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		acc.Email, acc.PasswordHash, acc.FirstName, acc.LastName, acc.Gender, acc.Phone, acc.BirthDate, acc.Active,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, account.ErrEmailTaken
		}
		r.log.Error("failed to create account", "error", err)
		return 0, fmt.Errorf("create account: %w", err)
	}

	// The empty medical record is born with the account.
	if _, err := tx.Exec(ctx,
		`INSERT INTO medical_records (account_id) VALUES ($1)`, id); err != nil {
		r.log.Error("failed to create medical record", "account_id", id, "error", err)
		return 0, fmt.Errorf("create medical record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int) (account.Account, error) {
	return r.findOne(ctx, `SELECT`+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (account.Account, error) {
	return r.findOne(ctx, `SELECT`+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (r *AccountRepository) FindByPublicID(ctx context.Context, publicID string) (account.Account, error) {
	return r.findOne(ctx, `SELECT`+accountColumns+` FROM accounts WHERE public_id = $1`, publicID)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (account.Account, error) {
	var acc account.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&acc.ID, &acc.Email, &acc.PasswordHash, &acc.FirstName, &acc.LastName,
		&acc.Gender, &acc.Phone, &acc.BirthDate, &acc.Active, &acc.PublicID,
		&acc.PublicPasswordHash, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		r.log.Error("failed to find account", "error", err)
		return account.Account{}, fmt.Errorf("find account: %w", err)
	}
	return acc, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, acc *account.Account) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts
		 SET first_name = $1, last_name = $2, gender = $3, phone = $4, birth_date = $5, updated_at = NOW()
		 WHERE id = $6 AND active`,
		acc.FirstName, acc.LastName, acc.Gender, acc.Phone, acc.BirthDate, acc.ID)
	if err != nil {
		r.log.Error("failed to update profile", "account_id", acc.ID, "error", err)
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		hash, id)
	if err != nil {
		r.log.Error("failed to update password", "account_id", id, "error", err)
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) SetPublicAccess(ctx context.Context, id int, publicID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts
		 SET public_id = $1, public_password_hash = $2, updated_at = NOW()
		 WHERE id = $3 AND active`,
		publicID, passwordHash, id)
	if err != nil {
		r.log.Error("failed to set public access", "account_id", id, "error", err)
		return fmt.Errorf("set public access: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) ClearPublicAccess(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts
		 SET public_id = NULL, public_password_hash = NULL, updated_at = NOW()
		 WHERE id = $1`,
		id)
	if err != nil {
		r.log.Error("failed to clear public access", "account_id", id, "error", err)
		return fmt.Errorf("clear public access: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

// Deactivate keeps the public link columns in place; the public guard
// reports such identifiers as gone rather than unknown.
func (r *AccountRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET active = FALSE, updated_at = NOW() WHERE id = $1`,
		id)
	if err != nil {
		r.log.Error("failed to deactivate account", "account_id", id, "error", err)
		return fmt.Errorf("deactivate account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}
