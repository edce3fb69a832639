package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkurganov/microblog/internal/mocks"
	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/testutil"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:    "alice@example.com",
		Username: "alice01",
		Password: "correct-horse",
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		publisher := mocks.NewPublisher(t)

		hasher.On("Hash", "correct-horse").Return("encoded-hash", nil)
		publisher.On("Publish", mock.Anything, "register_queue", "alice01", "user registered").
			Return(nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Email == "alice@example.com" &&
				u.Username == "alice01" &&
				u.PasswordHash == "encoded-hash"
		})).Return(model.User{
			ID:       uuid.New(),
			Email:    "alice@example.com",
			Username: "alice01",
		}, nil)

		svc := NewUserService(users, hasher, publisher, testutil.MakeNoopLogger())

		identity, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.Equal(t, "alice01", identity.Username)
		assert.NotEqual(t, uuid.Nil, identity.ID)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			mutate    func(*RegisterInput)
			wantField string
		}{
			{
				name:      "bad email",
				mutate:    func(in *RegisterInput) { in.Email = "not-an-email" },
				wantField: "email",
			},
			{
				name:      "short username",
				mutate:    func(in *RegisterInput) { in.Username = "ab" },
				wantField: "username",
			},
			{
				name:      "short password",
				mutate:    func(in *RegisterInput) { in.Password = "pw" },
				wantField: "password",
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				svc := NewUserService(
					mocks.NewUserStore(t),
					mocks.NewPasswordHasher(t),
					mocks.NewPublisher(t),
					testutil.MakeNoopLogger(),
				)

				in := validRegisterInput()
				tt.mutate(&in)

				_, err := svc.Register(ctx, in)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
			})
		}
	})

	t.Run("publish failure aborts before insert", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		publisher := mocks.NewPublisher(t)

		hasher.On("Hash", "correct-horse").Return("encoded-hash", nil)
		publisher.On("Publish", mock.Anything, "register_queue", "alice01", "user registered").
			Return(errors.New("broker down"))

		svc := NewUserService(users, hasher, publisher, testutil.MakeNoopLogger())

		_, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate user", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		publisher := mocks.NewPublisher(t)

		hasher.On("Hash", "correct-horse").Return("encoded-hash", nil)
		publisher.On("Publish", mock.Anything, "register_queue", "alice01", "user registered").
			Return(nil)
		users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicate)

		svc := NewUserService(users, hasher, publisher, testutil.MakeNoopLogger())

		_, err := svc.Register(ctx, validRegisterInput())
		assert.ErrorIs(t, err, model.ErrDuplicate)
	})
}
