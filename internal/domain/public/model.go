package public

import (
	"time"

	"medshare/internal/domain/contact"
	"medshare/internal/domain/medical"
)

// Viewer is the request-scoped authorization produced by a successful
// identifier+secret check. It is never serialized, never stored, and grants
// nothing beyond the single request it was created for.
type Viewer struct {
	AccountID int
}

// LinkInfo is what an anonymous caller may learn before supplying the
// secret: who owns the link and that a password is required.
type LinkInfo struct {
	OwnerName   string
	HasPassword bool
}

// Profile is the merged emergency view: profile basics, the decrypted
// medical lists, and the emergency contacts.
type Profile struct {
	FirstName string
	LastName  string
	FullName  string
	Gender    *string
	Phone     string
	BirthDate *time.Time
	Age       *int

	Medical  medical.Info
	Contacts []contact.Contact

	AccessedAt time.Time
}

// Stats is the passwordless preview of a public link: enough for a viewer
// to confirm they scanned the right code, nothing protected.
type Stats struct {
	FirstName        string
	LastName         string
	FullName         string
	Age              *int
	ContactCount     int
	HasMedicalInfo   bool
	RequiresPassword bool
}
