package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

type Auth struct {
	users        *User
	tokenService *TokenService
	metrics      model.DomainMetrics
	logger       *logger.Logger
}

func NewAuth(
	users *User,
	tokenManager model.TokenManager,
	metrics model.DomainMetrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		tokenService: NewTokenService(tokenManager, logger),
		metrics:      metrics,
		logger:       logger,
	}
}

// Register creates the user and returns a token for it.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (string, model.UserSummary, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", params.Username)

	user, err := a.users.Register(ctx, params)
	if err != nil {
		return "", model.UserSummary{}, err
	}

	token, err := a.tokenService.Issue(user.Username)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"username", user.Username,
			"error", err.Error())
		return "", model.UserSummary{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"username", user.Username)

	return token, user, nil
}

// Login checks credentials, records the login time and returns a token.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	ok, err := a.users.Authenticate(ctx, username, password)
	if err != nil {
		if !isUnexpected(err) {
			a.metrics.ObserveLogin(false)
		}
		return "", err
	}
	if !ok {
		a.metrics.ObserveLogin(false)
		a.logger.Info("Auth service: wrong password",
			"username", username)
		return "", model.NewErrWrongCredentials()
	}

	if err := a.users.TouchLogin(ctx, username); err != nil {
		return "", err
	}

	token, err := a.tokenService.Issue(username)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.metrics.ObserveLogin(true)
	a.logger.Info("Auth service: login completed successfully",
		"username", username)

	return token, nil
}

// Identify resolves a bearer token to a username.
func (a *Auth) Identify(_ context.Context, token string) (string, error) {
	return a.tokenService.GetUsername(token)
}

func isUnexpected(err error) bool {
	var apiErr *model.APIError
	return !errors.As(err, &apiErr)
}
