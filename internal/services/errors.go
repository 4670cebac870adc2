package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses; messages are safe to show to clients as-is.
var (
	ErrJobNotFound = errors.New("Job not found")
	// ErrNotOwner covers both "not your listing" and "listing does not
	// exist" on mutations, so callers cannot probe for hidden listings.
	ErrNotOwner           = errors.New("Unauthorized")
	ErrAlreadyApplied     = errors.New("You have already applied to this job")
	ErrAlreadyFavorited   = errors.New("Job already in favorites")
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidInput       = errors.New("Invalid input")
)
