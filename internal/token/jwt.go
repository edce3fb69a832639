package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dkurganov/microblog/internal/model"
)

const (
	// AccessTTL is the fixed validity window of access tokens.
	AccessTTL = 20 * time.Minute
	// RefreshTTL is the fixed validity window of refresh tokens.
	RefreshTTL = 7 * 24 * time.Hour

	typeAccess  = "access"
	typeRefresh = "refresh"
)

type accessClaims struct {
	jwt.RegisteredClaims
	TokenType string         `json:"typ"`
	Identity  model.Identity `json:"identity"`
}

type refreshClaims struct {
	jwt.RegisteredClaims
	TokenType string    `json:"typ"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

var _ model.TokenCodec = (*Codec)(nil)

// Codec signs and verifies access and refresh tokens with a shared HMAC
// secret. Verification distinguishes expiry from a bad signature so callers
// can route the failure without inspecting error text.
type Codec struct {
	secretKey string
}

// NewCodec creates a token codec signing with the provided secret key.
func NewCodec(secretKey string) *Codec {
	return &Codec{secretKey: secretKey}
}

// IssueAccess creates a short-lived access token carrying the identity snapshot.
func (c *Codec) IssueAccess(identity model.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
		},
		TokenType: typeAccess,
		Identity:  identity,
	})

	tokenString, err := token.SignedString([]byte(c.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// IssueRefresh creates a long-lived refresh token bound to the owner id.
func (c *Codec) IssueRefresh(ownerID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTTL)),
		},
		TokenType: typeRefresh,
		OwnerID:   ownerID,
	})

	tokenString, err := token.SignedString([]byte(c.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, nil
}

// VerifyAccess validates an access token and returns the embedded identity.
func (c *Codec) VerifyAccess(tokenString string) (model.Identity, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc)
	if err != nil {
		return model.Identity{}, classify(err)
	}
	if !token.Valid || claims.TokenType != typeAccess {
		return model.Identity{}, model.ErrMalformedToken
	}
	return claims.Identity, nil
}

// VerifyRefresh validates a refresh token and returns the owner id.
func (c *Codec) VerifyRefresh(tokenString string) (uuid.UUID, error) {
	claims := &refreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc)
	if err != nil {
		return uuid.Nil, classify(err)
	}
	if !token.Valid || claims.TokenType != typeRefresh {
		return uuid.Nil, model.ErrMalformedToken
	}
	return claims.OwnerID, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
	}
	return []byte(c.secretKey), nil
}

// classify maps jwt parse failures onto the tagged error taxonomy. The
// signature check takes precedence: a token signed with the wrong secret is
// ErrInvalidSignature even when its expiry is also in the past.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid):
		return model.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.ErrTokenExpired
	default:
		return model.ErrMalformedToken
	}
}
