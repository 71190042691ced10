package domain

import "errors"

// Error taxonomy shared by all operations. Services wrap these with
// context via fmt.Errorf and %w; callers match with errors.Is.
var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrDuplicateAccount        = errors.New("an account with this email already exists")
	ErrUnauthenticated         = errors.New("no active session")
	ErrNotFound                = errors.New("not found")
	ErrEmptySession            = errors.New("workout session has no exercises")
	ErrValidation              = errors.New("validation failed")
	ErrCollaboratorUnavailable = errors.New("remote collaborator unavailable")
)
