package medical

import "time"

type getInput struct{}

type getOutput struct {
	Body InfoResponse
}

// InfoResponse is the decrypted medical record; the four lists never leave
// the server encrypted-at-rest shape except through this view.
type InfoResponse struct {
	BloodType   *string    `json:"blood_type"`
	Allergies   []string   `json:"allergies"`
	Medications []string   `json:"medications"`
	Conditions  []string   `json:"conditions"`
	Surgeries   []string   `json:"surgeries"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type updateInput struct {
	Body UpdateRequest
}

type UpdateRequest struct {
	BloodType   *string  `json:"blood_type,omitempty" enum:"A+,A-,B+,B-,AB+,AB-,O+,O-"`
	Allergies   []string `json:"allergies,omitempty" maxItems:"100"`
	Medications []string `json:"medications,omitempty" maxItems:"100"`
	Conditions  []string `json:"conditions,omitempty" maxItems:"100"`
	Surgeries   []string `json:"surgeries,omitempty" maxItems:"100"`
}

type updateOutput struct {
	Body InfoResponse
}

type clearInput struct{}

type clearOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
