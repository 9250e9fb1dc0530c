package service

import "errors"

var (
	// ErrNotFound covers both records that never existed and records owned
	// by another user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidPrice       = errors.New("price must be non-negative")
	ErrInvalidTime        = errors.New("time_minutes must be non-negative")
)
