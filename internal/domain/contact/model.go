package contact

import "time"

// MaxPerAccount caps emergency contacts per account.
const MaxPerAccount = 5

// Contact is stored in clear: first responders need it without a decryption
// step, and it is far less sensitive than the medical lists.
type Contact struct {
	ID           int
	AccountID    int
	Name         string
	Relationship string
	Phone        string
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Input carries the owner-submitted contact fields.
type Input struct {
	Name         string
	Relationship string
	Phone        string
	Email        *string
}
