package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("already exists")

	// ErrMissingLoginKey is returned when neither email nor username is supplied.
	ErrMissingLoginKey = errors.New("email and username are empty")

	// ErrInvalidCredentials covers unknown users and password mismatches alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownToken is returned when a refresh token is not on file.
	ErrUnknownToken = errors.New("refresh token not on file")

	// ErrUnavailable marks store or cache backend failures. Callers surface
	// it as a 5xx-class condition and never retry inside this layer.
	ErrUnavailable = errors.New("backend unavailable")
)
