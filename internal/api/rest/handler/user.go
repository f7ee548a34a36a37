package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

// UserService defines user directory and mailbox operations.
type UserService interface {
	ListAll(ctx context.Context) ([]model.UserSummary, error)
	GetProfile(ctx context.Context, caller, username string) (model.UserProfile, error)
	MessagesFrom(ctx context.Context, caller, username string) ([]model.MessageView, error)
	MessagesTo(ctx context.Context, caller, username string) ([]model.MessageView, error)
}

// User handles HTTP endpoints under /users.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List handles GET /users.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAll(r.Context())
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	resp := make([]userSummaryResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserSummary(u))
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": resp})
}

// Get handles GET /users/{username}.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")

	profile, err := h.userService.GetProfile(r.Context(), caller, username)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserProfile(profile)})
}

// MessagesTo handles GET /users/{username}/to.
func (h *User) MessagesTo(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")

	views, err := h.userService.MessagesTo(r.Context(), caller, username)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	resp := make([]incomingMessageResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, incomingMessageResponse{
			ID:       v.ID,
			Body:     v.Body,
			SentAt:   v.SentAt,
			ReadAt:   v.ReadAt,
			FromUser: toUserSummary(v.Counterpart),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": resp})
}

// MessagesFrom handles GET /users/{username}/from.
func (h *User) MessagesFrom(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")

	views, err := h.userService.MessagesFrom(r.Context(), caller, username)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	resp := make([]outgoingMessageResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, outgoingMessageResponse{
			ID:     v.ID,
			Body:   v.Body,
			SentAt: v.SentAt,
			ReadAt: v.ReadAt,
			ToUser: toUserSummary(v.Counterpart),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": resp})
}

func (h *User) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	return callerFromContext(w, r, h.contextManager, h.logger)
}

func callerFromContext(w http.ResponseWriter, r *http.Request, cm model.ContextManager, log *logger.Logger) (string, bool) {
	username, ok := cm.GetUsernameFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken(), log)
		return "", false
	}
	return username, true
}
