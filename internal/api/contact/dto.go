package contact

import "time"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int               `json:"total"`
}

type getInput struct {
	ID int `path:"id" minimum:"1"`
}

type getOutput struct {
	Body ContactResponse
}

type ContactResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type createInput struct {
	Body ContactRequest
}

type ContactRequest struct {
	Name         string  `json:"name" minLength:"1" maxLength:"200"`
	Relationship string  `json:"relationship" minLength:"1" maxLength:"100"`
	Phone        string  `json:"phone" minLength:"1" maxLength:"32"`
	Email        *string `json:"email,omitempty" format:"email" maxLength:"255"`
}

type createOutput struct {
	Body ContactResponse
}

type updateInput struct {
	ID   int `path:"id" minimum:"1"`
	Body ContactRequest
}

type updateOutput struct {
	Body ContactResponse
}

type deleteInput struct {
	ID int `path:"id" minimum:"1"`
}

type deleteOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
