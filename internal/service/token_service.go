package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkurganov/microblog/internal/logger"
	"github.com/dkurganov/microblog/internal/model"
)

// TokenService orchestrates login, refresh and access verification over the
// token codec, the refresh-token store and the single-slot access cache. It
// holds no state of its own beyond those collaborators.
type TokenService struct {
	users         model.UserStore
	refreshTokens model.RefreshTokenStore
	cache         model.AccessTokenCache
	codec         model.TokenCodec
	hasher        model.PasswordHasher
	cacheTTL      time.Duration
	logger        *logger.Logger
}

func NewTokenService(
	users model.UserStore,
	refreshTokens model.RefreshTokenStore,
	cache model.AccessTokenCache,
	codec model.TokenCodec,
	hasher model.PasswordHasher,
	cacheTTL time.Duration,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{
		users:         users,
		refreshTokens: refreshTokens,
		cache:         cache,
		codec:         codec,
		hasher:        hasher,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// LoginInput carries credentials. Exactly one of Email or Username selects
// the account.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

// LoginResult is returned to the client on successful login.
type LoginResult struct {
	Identity     model.Identity
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials, persists a refresh token and installs a fresh
// access token into the cache slot. A refresh token that cannot be durably
// recorded aborts the whole login: no session is handed out without one.
func (s *TokenService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	user, err := s.resolveByLoginKey(ctx, in)
	if err != nil {
		return LoginResult{}, err
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return LoginResult{}, model.ErrInvalidCredentials
	}

	refresh, err := s.codec.IssueRefresh(user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.refreshTokens.Insert(ctx, refresh, user.ID); err != nil {
		s.logger.Error("failed to persist refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return LoginResult{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	access, err := s.codec.IssueAccess(user.Identity())
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	if err := s.replaceCachedToken(ctx, access); err != nil {
		return LoginResult{}, err
	}

	s.logger.Info("login completed", "user_id", user.ID)

	return LoginResult{
		Identity:     user.Identity(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh exchanges a valid, on-file refresh token for a new access token.
// The refresh token itself is not rotated. The identity snapshot is
// re-resolved so a changed username or email lands in the new token.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	ownerID, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	if _, err := s.refreshTokens.Find(ctx, refreshToken, ownerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrUnknownToken
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve token owner: %w", err)
	}

	access, err := s.codec.IssueAccess(user.Identity())
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	if err := s.replaceCachedToken(ctx, access); err != nil {
		return "", err
	}

	s.logger.Info("access token refreshed", "user_id", user.ID)

	return access, nil
}

// VerifyAccess decodes an access token and re-confirms the embedded email
// against the canonical user record, so a snapshot that survived an identity
// change stops verifying.
func (s *TokenService) VerifyAccess(ctx context.Context, accessToken string) (model.Identity, error) {
	identity, err := s.codec.VerifyAccess(accessToken)
	if err != nil {
		return model.Identity{}, err
	}

	user, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, model.ErrInvalidToken
		}
		return model.Identity{}, fmt.Errorf("failed to resolve token identity: %w", err)
	}

	if user.Email != identity.Email {
		return model.Identity{}, model.ErrInvalidToken
	}

	return user.Identity(), nil
}

// replaceCachedToken clears the slot and installs the new token. The delete
// is best-effort; a failed set is surfaced because verifiers would keep
// trusting a stale token otherwise.
func (s *TokenService) replaceCachedToken(ctx context.Context, access string) error {
	if err := s.cache.Delete(ctx); err != nil {
		s.logger.Warn("failed to clear access token slot", "error", err.Error())
	}

	if err := s.cache.Set(ctx, access, s.cacheTTL); err != nil {
		s.logger.Error("failed to store access token", "error", err.Error())
		return fmt.Errorf("failed to store access token: %w", err)
	}
	return nil
}

func (s *TokenService) resolveByLoginKey(ctx context.Context, in LoginInput) (model.User, error) {
	var (
		user model.User
		err  error
	)

	switch {
	case in.Email != "":
		user, err = s.users.GetByEmail(ctx, in.Email)
	case in.Username != "":
		user, err = s.users.GetByUsername(ctx, in.Username)
	default:
		return model.User{}, model.ErrMissingLoginKey
	}

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}
