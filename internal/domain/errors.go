package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a malformed or missing required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden indicates the caller is not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyRegistered indicates a duplicate (event, user) registration
	// when unique registration enforcement is enabled.
	ErrAlreadyRegistered = errors.New("already registered for event")
	// ErrDuplicateEmail indicates a subscriber insert hit the unique email
	// constraint.
	ErrDuplicateEmail = errors.New("email already subscribed")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
