package contact

import "context"

type Repository interface {
	ListByAccount(ctx context.Context, accountID int) ([]Contact, error)
	CountByAccount(ctx context.Context, accountID int) (int, error)
	// Get and the mutations filter by account, so one owner can never reach
	// another owner's contacts.
	Get(ctx context.Context, accountID, contactID int) (Contact, error)
	Create(ctx context.Context, c *Contact) (int, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, accountID, contactID int) error
}
