package common

import "errors"

// Sentinel errors shared across layers. Repositories and services return
// these (usually wrapped with context); the HTTP layer maps them to status
// codes and structured error codes.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrUnauthorized        = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrGalleryFull         = errors.New("gallery is full")
	ErrUpstreamUnavailable = errors.New("museum catalog unavailable")
)
