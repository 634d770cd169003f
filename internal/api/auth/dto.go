package auth

import "time"

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Email     string     `json:"email" format:"email" maxLength:"255"`
	Password  string     `json:"password" minLength:"6" maxLength:"72"`
	FirstName string     `json:"first_name" minLength:"1" maxLength:"100"`
	LastName  string     `json:"last_name,omitempty" maxLength:"100"`
	Gender    *string    `json:"gender,omitempty" enum:"male,female,other"`
	Phone     string     `json:"phone,omitempty" maxLength:"32"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type registerOutput struct {
	Body AuthResponse
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email" format:"email" maxLength:"255"`
	Password string `json:"password" minLength:"1" maxLength:"72"`
}

type loginOutput struct {
	Body AuthResponse
}

// AuthResponse carries the signed owner credential.
type AuthResponse struct {
	AccountID int    `json:"account_id"`
	Token     string `json:"token"`
}

type forgotPasswordInput struct {
	Body ForgotPasswordRequest
}

type ForgotPasswordRequest struct {
	Email string `json:"email" format:"email" maxLength:"255"`
}

type forgotPasswordOutput struct {
	Body MessageResponse
}

type resetPasswordInput struct {
	Body ResetPasswordRequest
}

type ResetPasswordRequest struct {
	Token       string `json:"token" minLength:"1"`
	NewPassword string `json:"new_password" minLength:"6" maxLength:"72"`
}

type resetPasswordOutput struct {
	Body MessageResponse
}

type verifyTokenInput struct {
	Token string `path:"token" maxLength:"128"`
}

type verifyTokenOutput struct {
	Body VerifyTokenResponse
}

type VerifyTokenResponse struct {
	Valid bool `json:"valid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
