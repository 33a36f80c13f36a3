package commands

import (
	"context"
	"errors"
	"log/slog"

	"renthub/internal/infra"
	"renthub/internal/pkg/errs"
	"renthub/internal/pkg/jwt"
	"renthub/internal/pkg/password"
	"renthub/internal/usecase/queries"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrInactiveUser         = errors.New("user account is inactive")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow   shared.UnitOfWork
	users queries.UserReadStore
	jwt   *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, users: users, jwt: jwtSvc}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*TokenPair, error) {
	user, err := c.users.FindByEmailForAuth(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same failure as a wrong password, so the response does not
			// reveal which accounts exist.
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Wrap(err, "failed to load user for login")
	}

	if err := password.ComparePassword(user.PasswordHash, plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	pair, err := c.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed timestamp write must not fail the login.
	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), user.ID)
	}); err != nil {
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return pair, nil
}

func (c *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	user, err := c.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Wrap(err, "failed to load user for refresh")
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return c.issueTokens(user.ID)
}

func (c *authCommandsImpl) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	access, err := c.jwt.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := c.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
