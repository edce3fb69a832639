package model

import "github.com/google/uuid"

// TokenCodec encodes and decodes signed, expiring token payloads. Access
// tokens carry a full identity snapshot; refresh tokens carry the owner id
// only. Verify methods return ErrTokenExpired, ErrInvalidSignature or
// ErrMalformedToken so callers never have to inspect error text.
type TokenCodec interface {
	IssueAccess(identity Identity) (string, error)
	IssueRefresh(ownerID uuid.UUID) (string, error)
	VerifyAccess(token string) (Identity, error)
	VerifyRefresh(token string) (uuid.UUID, error)
}
