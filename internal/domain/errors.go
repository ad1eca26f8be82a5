package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., optimistic locking)
	ErrConflict = errors.New("conflict occurred")

	// ErrCacheMiss is returned by caches when a key is absent or expired
	ErrCacheMiss = errors.New("cache miss")
)
