package medical

import "context"

type Repository interface {
	Get(ctx context.Context, accountID int) (Record, error)
	CreateEmpty(ctx context.Context, accountID int) error
	// Update writes the blood type and all four field pairs in a single
	// statement, so a concurrent reader never sees one field's ciphertext
	// next to another write's IV.
	Update(ctx context.Context, rec *Record) error
	// Clear nulls the encrypted fields and blood type without deleting the row.
	Clear(ctx context.Context, accountID int) error
}
