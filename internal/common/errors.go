package common

import "errors"

var (
	// repository specific errors
	ErrNotFound = errors.New("not found")

	// auth specific errors
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("not authorized")

	// input validation errors
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrMissingField      = errors.New("missing required field")
)
