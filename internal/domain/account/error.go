package account

import "errors"

var (
	ErrNotFound     = errors.New("account not found")
	ErrEmailTaken   = errors.New("email is already registered")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInactive     = errors.New("account is inactive")
	ErrInvalidInput = errors.New("invalid input")
)
