package medical

import "errors"

var (
	ErrNotFound     = errors.New("medical record not found")
	ErrInvalidInput = errors.New("invalid medical data")
)
