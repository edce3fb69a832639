package model

import "errors"

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its expiry. The caller may recover through the refresh flow.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidSignature means the token was not signed with the shared
	// secret. This is a crafted or garbage credential, not a stale one.
	ErrInvalidSignature = errors.New("token signature invalid")

	// ErrMalformedToken means the token could not be decoded at all, or its
	// claims do not match the expected shape.
	ErrMalformedToken = errors.New("token malformed")

	// ErrInvalidToken means a decoded token carries an identity snapshot
	// that no longer matches the canonical user record.
	ErrInvalidToken = errors.New("invalid token")
)
