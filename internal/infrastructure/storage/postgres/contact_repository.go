package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medshare/internal/domain/contact"
)

type ContactRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewContactRepository(pool *pgxpool.Pool, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		pool: pool,
		log:  log.With("component", "contact_repository"),
	}
}

func (r *ContactRepository) ListByAccount(ctx context.Context, accountID int) ([]contact.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, name, relationship, phone, email, created_at, updated_at
		 FROM emergency_contacts
		 WHERE account_id = $1
		 ORDER BY created_at`,
		accountID)
	if err != nil {
		r.log.Error("failed to list contacts", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Name, &c.Relationship,
			&c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) CountByAccount(ctx context.Context, accountID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM emergency_contacts WHERE account_id = $1`,
		accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

func (r *ContactRepository) Get(ctx context.Context, accountID, contactID int) (contact.Contact, error) {
	var c contact.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, account_id, name, relationship, phone, email, created_at, updated_at
		 FROM emergency_contacts
		 WHERE id = $1 AND account_id = $2`,
		contactID, accountID,
	).Scan(&c.ID, &c.AccountID, &c.Name, &c.Relationship,
		&c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact.Contact{}, contact.ErrNotFound
		}
		r.log.Error("failed to get contact", "contact_id", contactID, "error", err)
		return contact.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO emergency_contacts (account_id, name, relationship, phone, email)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.AccountID, c.Name, c.Relationship, c.Phone, c.Email).Scan(&id)
	if err != nil {
		r.log.Error("failed to create contact", "account_id", c.AccountID, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}
	return id, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE emergency_contacts
		 SET name = $1, relationship = $2, phone = $3, email = $4, updated_at = NOW()
		 WHERE id = $5 AND account_id = $6`,
		c.Name, c.Relationship, c.Phone, c.Email, c.ID, c.AccountID)
	if err != nil {
		r.log.Error("failed to update contact", "contact_id", c.ID, "error", err)
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, accountID, contactID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM emergency_contacts WHERE id = $1 AND account_id = $2`,
		contactID, accountID)
	if err != nil {
		r.log.Error("failed to delete contact", "contact_id", contactID, "error", err)
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}
