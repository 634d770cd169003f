package profile

import "time"

type getInput struct{}

type getOutput struct {
	Body ProfileResponse
}

type ProfileResponse struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	PublicURL    *string    `json:"public_url,omitempty"`
	PublicAccess bool       `json:"public_access_enabled"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type updateInput struct {
	Body UpdateRequest
}

type UpdateRequest struct {
	FirstName string     `json:"first_name" minLength:"1" maxLength:"100"`
	LastName  string     `json:"last_name,omitempty" maxLength:"100"`
	Gender    *string    `json:"gender,omitempty" enum:"male,female,other"`
	Phone     string     `json:"phone,omitempty" maxLength:"32"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type updateOutput struct {
	Body ProfileResponse
}

type changePasswordInput struct {
	Body ChangePasswordRequest
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" minLength:"1" maxLength:"72"`
	NewPassword     string `json:"new_password" minLength:"6" maxLength:"72"`
}

type changePasswordOutput struct {
	Body MessageResponse
}

type enablePublicAccessInput struct {
	Body EnablePublicAccessRequest
}

type EnablePublicAccessRequest struct {
	PublicPassword string `json:"public_password" minLength:"6" maxLength:"72"`
}

type enablePublicAccessOutput struct {
	Body PublicAccessResponse
}

type PublicAccessResponse struct {
	PublicID  string `json:"public_id"`
	PublicURL string `json:"public_url"`
}

type disablePublicAccessInput struct{}

type disablePublicAccessOutput struct {
	Body MessageResponse
}

type deactivateInput struct {
	Body DeactivateRequest
}

// DeactivateRequest re-confirms the login password before soft-deleting.
type DeactivateRequest struct {
	Password string `json:"password" minLength:"1" maxLength:"72"`
}

type deactivateOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
