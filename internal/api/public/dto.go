package public

import "time"

type checkLinkInput struct {
	PublicID string `path:"uuid" format:"uuid"`
}

type checkLinkOutput struct {
	Body CheckLinkResponse
}

type CheckLinkResponse struct {
	Exists      bool   `json:"exists"`
	OwnerName   string `json:"owner_name"`
	HasPassword bool   `json:"has_password"`
}

type getStatsInput struct {
	PublicID string `path:"uuid" format:"uuid"`
}

type getStatsOutput struct {
	Body StatsResponse
}

// StatsResponse previews a link before the password prompt: enough to
// confirm the right code was scanned, nothing from the protected record.
type StatsResponse struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name,omitempty"`
	FullName         string `json:"full_name"`
	Age              *int   `json:"age,omitempty"`
	ContactCount     int    `json:"emergency_contact_count"`
	HasMedicalInfo   bool   `json:"has_medical_info"`
	RequiresPassword bool   `json:"requires_password"`
}

type getProfileInput struct {
	PublicID string `path:"uuid" format:"uuid"`
	Body     AccessRequest
}

type AccessRequest struct {
	Password string `json:"password" minLength:"1" maxLength:"72"`
}

type getProfileOutput struct {
	Body ProfileResponse
}

// ProfileResponse is the merged emergency view returned to an authorized
// anonymous viewer. No credential accompanies it; the next request starts
// over with identifier and password.
type ProfileResponse struct {
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name,omitempty"`
	FullName   string        `json:"full_name"`
	Gender     *string       `json:"gender,omitempty"`
	Phone      string        `json:"phone,omitempty"`
	BirthDate  *time.Time    `json:"birth_date,omitempty"`
	Age        *int          `json:"age,omitempty"`
	Medical    MedicalView   `json:"medical_info"`
	Contacts   []ContactView `json:"emergency_contacts"`
	AccessedAt time.Time     `json:"accessed_at"`
}

type MedicalView struct {
	BloodType   *string  `json:"blood_type"`
	Allergies   []string `json:"allergies"`
	Medications []string `json:"medications"`
	Conditions  []string `json:"conditions"`
	Surgeries   []string `json:"surgeries"`
}

type ContactView struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}
