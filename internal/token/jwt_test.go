package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurganov/microblog/internal/model"
)

const testSecret = "test-secret"

func TestCodec_AccessRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	identity := model.Identity{
		ID:       uuid.New(),
		Username: "alice01",
		Email:    "alice@example.com",
	}

	tokenString, err := codec.IssueAccess(identity)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := codec.VerifyAccess(tokenString)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestCodec_RefreshRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)
	ownerID := uuid.New()

	tokenString, err := codec.IssueRefresh(ownerID)
	require.NoError(t, err)

	got, err := codec.VerifyRefresh(tokenString)
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)
}

func TestCodec_VerifyAccess_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := NewCodec("other-secret").IssueAccess(model.Identity{ID: uuid.New()})
	require.NoError(t, err)

	_, err = NewCodec(testSecret).VerifyAccess(tokenString)
	assert.ErrorIs(t, err, model.ErrInvalidSignature)
}

func TestCodec_VerifyAccess_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
		TokenType: typeAccess,
		Identity:  model.Identity{ID: uuid.New()},
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewCodec(testSecret).VerifyAccess(tokenString)
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestCodec_VerifyAccess_ExpiredAndWrongSecret(t *testing.T) {
	t.Parallel()

	// Signature precedence: a forged token never reports as merely expired.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
		TokenType: typeAccess,
	})
	tokenString, err := expired.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = NewCodec(testSecret).VerifyAccess(tokenString)
	assert.ErrorIs(t, err, model.ErrInvalidSignature)
}

func TestCodec_VerifyAccess_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewCodec(testSecret).VerifyAccess("not.a.token")
	assert.ErrorIs(t, err, model.ErrMalformedToken)
}

func TestCodec_TypeMismatch(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret)

	refresh, err := codec.IssueRefresh(uuid.New())
	require.NoError(t, err)
	_, err = codec.VerifyAccess(refresh)
	assert.ErrorIs(t, err, model.ErrMalformedToken)

	access, err := codec.IssueAccess(model.Identity{ID: uuid.New()})
	require.NoError(t, err)
	_, err = codec.VerifyRefresh(access)
	assert.ErrorIs(t, err, model.ErrMalformedToken)
}
