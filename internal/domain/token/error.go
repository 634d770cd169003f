package token

import "errors"

var (
	ErrInvalidToken    = errors.New("reset token not found")
	ErrAlreadyUsed     = errors.New("reset token was already used")
	ErrExpired         = errors.New("reset token has expired")
	ErrAccountInactive = errors.New("account is inactive")
)
