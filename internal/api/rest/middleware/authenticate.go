package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/messagely-server/internal/api/rest/handler"
	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

// TokenService resolves usernames from bearer tokens.
type TokenService interface {
	Identify(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the username into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r.Header.Get("Authorization"))
		if tokenString == "" {
			handler.WriteError(w, model.NewErrMissingAuthorizationToken(), m.logger)
			return
		}

		username, err := m.tokenService.Identify(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			handler.WriteError(w, model.NewErrInvalidToken(), m.logger)
			return
		}

		ctx := m.contextManager.SetUsernameToContext(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
