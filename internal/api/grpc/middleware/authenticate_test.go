package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkurganov/microblog/internal/mocks"
	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	identity := model.Identity{ID: uuid.New(), Username: "alice01", Email: "alice@example.com"}

	tests := []struct {
		name         string
		cachedToken  string
		cacheErr     error
		verifyErr    error
		wantGRPCCode codes.Code
		wantErr      bool
	}{
		{
			name:         "empty cache slot",
			cacheErr:     model.ErrNotFound,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "cache backend unavailable",
			cacheErr:     model.ErrUnavailable,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "expired cached token",
			cachedToken:  "stale-token",
			verifyErr:    model.ErrTokenExpired,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "bad signature",
			cachedToken:  "forged-token",
			verifyErr:    model.ErrInvalidSignature,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:        "valid cached token",
			cachedToken: "good-token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache := mocks.NewAccessTokenCache(t)
			cache.On("Get", mock.Anything).Return(tt.cachedToken, tt.cacheErr)

			codec := mocks.NewTokenCodec(t)
			if tt.cacheErr == nil {
				codec.On("VerifyAccess", tt.cachedToken).Return(identity, tt.verifyErr)
			}

			cm := mocks.NewContextManager(t)
			if !tt.wantErr {
				cm.On("SetIdentityToContext", mock.Anything, identity).
					Return(context.Background())
			}

			m := NewAuthenticate(cache, codec, cm, testutil.MakeNoopLogger())

			ctx, err := m.AuthFunc(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				// Uniform rejection message regardless of the reason.
				assert.Equal(t, "unauthenticated", st.Message())
				assert.Nil(t, ctx)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, ctx)
		})
	}
}
