package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/dkurganov/microblog/internal/event"
	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

const registerTopic = "register_queue"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError reports which register field failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// UserService handles registration and profile reads.
type UserService struct {
	users     model.UserStore
	hasher    model.PasswordHasher
	publisher event.Publisher
	logger    *logger.Logger
}

func NewUserService(
	users model.UserStore,
	hasher model.PasswordHasher,
	publisher event.Publisher,
	logger *logger.Logger,
) *UserService {
	return &UserService{
		users:     users,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterInput carries a new account request.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register validates the input, hashes the password, announces the
// registration and creates the user. The announcement goes out before the
// insert, mirroring the queue-first registration pipeline this service
// feeds.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (model.Identity, error) {
	if err := validateRegister(in); err != nil {
		return model.Identity{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.publisher.Publish(ctx, registerTopic, in.Username, "user registered"); err != nil {
		s.logger.Error("failed to publish registration event",
			"username", in.Username,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to publish registration event: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Identity{}, model.ErrDuplicate
		}
		return model.Identity{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return user.Identity(), nil
}

func validateRegister(in RegisterInput) error {
	if !emailPattern.MatchString(in.Email) {
		return &ValidationError{Field: "email", Reason: "invalid format"}
	}
	if len(in.Username) < 5 {
		return &ValidationError{Field: "username", Reason: "too short"}
	}
	if len(in.Password) < 5 {
		return &ValidationError{Field: "password", Reason: "too short"}
	}
	return nil
}
