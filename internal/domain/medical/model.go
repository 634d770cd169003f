package medical

import (
	"time"

	"medshare/internal/crypto"
)

// Record is the persisted shape: blood type in clear for emergency triage,
// the four list fields only as ciphertext+IV pairs.
type Record struct {
	ID          int
	AccountID   int
	BloodType   *string
	Allergies   crypto.Field
	Medications crypto.Field
	Conditions  crypto.Field
	Surgeries   crypto.Field
	UpdatedAt   *time.Time
}

// Info is the decrypted view handed to the owner or a public viewer.
type Info struct {
	BloodType   *string    `json:"blood_type"`
	Allergies   []string   `json:"allergies"`
	Medications []string   `json:"medications"`
	Conditions  []string   `json:"conditions"`
	Surgeries   []string   `json:"surgeries"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Update carries the owner-submitted plaintext lists.
type Update struct {
	BloodType   *string
	Allergies   []string
	Medications []string
	Conditions  []string
	Surgeries   []string
}

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// ValidBloodType accepts the eight ABO/Rh types; nil means unknown.
func ValidBloodType(bt *string) bool {
	if bt == nil {
		return true
	}
	_, ok := bloodTypes[*bt]
	return ok
}
