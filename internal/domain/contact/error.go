package contact

import "errors"

var (
	ErrNotFound     = errors.New("emergency contact not found")
	ErrLimitReached = errors.New("emergency contact limit reached")
	ErrInvalidInput = errors.New("invalid contact data")
)
