package services

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is not
	// owned by the requesting shopkeeper.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when signup reuses an existing email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
