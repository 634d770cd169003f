package account

import "time"

// Account is the identity record. PublicID and PublicPasswordHash are set and
// cleared together: a public link with no access password must never exist.
type Account struct {
	ID                 int
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Gender             *string
	Phone              string
	BirthDate          *time.Time
	Active             bool
	PublicID           *string
	PublicPasswordHash *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

var genders = map[string]struct{}{
	"male": {}, "female": {}, "other": {},
}

// ValidGender accepts the supported gender values; nil means not stated.
func ValidGender(g *string) bool {
	if g == nil {
		return true
	}
	_, ok := genders[*g]
	return ok
}

// FullName is what the public link check shows before any secret is supplied.
func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// PublicAccessConfigured reports whether the account can be reached through
// its public link at all.
func (a Account) PublicAccessConfigured() bool {
	return a.PublicID != nil && a.PublicPasswordHash != nil
}
