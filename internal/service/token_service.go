package service

import (
	"errors"
	"fmt"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

// TokenService issues session tokens and resolves them back to usernames.
// It translates TokenManager failures into invalid_token API errors.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(username string) (string, error) {
	token, err := s.manager.Issue(username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// GetUsername returns the identity bound to token.
func (s *TokenService) GetUsername(token string) (string, error) {
	if token == "" {
		return "", model.NewErrMissingAuthorizationToken()
	}

	username, err := s.manager.Verify(token)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			s.logger.Debug("Token service: expired token")
		} else {
			s.logger.Debug("Token service: rejected token",
				"error", err.Error())
		}
		return "", model.NewErrInvalidToken()
	}

	return username, nil
}
