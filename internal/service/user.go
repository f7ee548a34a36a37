package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
	"github.com/dtroode/messagely-server/internal/password"
)

type User struct {
	userStore    model.UserStore
	messageStore model.MessageStore
	hasher       model.PasswordHasher
	logger       *logger.Logger
	now          func() time.Time
}

func NewUser(
	userStore model.UserStore,
	messageStore model.MessageStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:    userStore,
		messageStore: messageStore,
		hasher:       hasher,
		logger:       logger,
		now:          time.Now,
	}
}

// Register stores a new user with a hashed password.
func (s *User) Register(ctx context.Context, params model.RegisterParams) (model.UserSummary, error) {
	if params.Username == "" || params.Password == "" || params.FirstName == "" ||
		params.LastName == "" || params.Phone == "" {
		return model.UserSummary{}, model.NewErrMissingRegistrationFields()
	}
	if len(params.Password) > password.MaxLength {
		return model.UserSummary{}, model.NewErrValidation(
			fmt.Sprintf("password must be at most %d bytes", password.MaxLength))
	}

	s.logger.Debug("User service: registering user",
		"username", params.Username)

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"username", params.Username,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user, err := s.userStore.Create(ctx, model.User{
		Username:     params.Username,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Phone:        params.Phone,
		JoinedAt:     now,
		LastLoginAt:  now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		s.logger.Info("User service: username already taken",
			"username", params.Username)
		return model.UserSummary{}, model.NewErrUsernameTaken(params.Username)
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.UserSummary{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user registered",
		"username", user.Username)

	return user.Summary(), nil
}

// Authenticate reports whether password matches the stored hash for username.
func (s *User) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, model.NewErrMissingCredentials()
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return false, err
	}

	return s.hasher.Verify(password, user.PasswordHash), nil
}

func (s *User) TouchLogin(ctx context.Context, username string) error {
	if username == "" {
		return model.NewErrMissingUsername()
	}

	err := s.userStore.TouchLogin(ctx, username, s.now())
	if errors.Is(err, model.ErrNotFound) {
		return model.NewErrUserNotFound(username)
	}
	if err != nil {
		s.logger.Error("User service: failed to update last login",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (s *User) ListAll(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []model.UserSummary{}
	}

	return users, nil
}

// GetProfile returns the full profile of username. Only the user may see it.
func (s *User) GetProfile(ctx context.Context, caller, username string) (model.UserProfile, error) {
	if err := authorizeSelf(caller, username); err != nil {
		return model.UserProfile{}, err
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return model.UserProfile{}, err
	}

	return user.Profile(), nil
}

// MessagesFrom returns messages sent by username, each joined with its recipient.
func (s *User) MessagesFrom(ctx context.Context, caller, username string) ([]model.MessageView, error) {
	return s.messages(ctx, caller, username, s.messageStore.ListFrom)
}

// MessagesTo returns messages received by username, each joined with its sender.
func (s *User) MessagesTo(ctx context.Context, caller, username string) ([]model.MessageView, error) {
	return s.messages(ctx, caller, username, s.messageStore.ListTo)
}

func (s *User) messages(
	ctx context.Context,
	caller, username string,
	list func(context.Context, string) ([]model.MessageView, error),
) ([]model.MessageView, error) {
	if err := authorizeSelf(caller, username); err != nil {
		return nil, err
	}

	if _, err := s.getUser(ctx, username); err != nil {
		return nil, err
	}

	messages, err := list(ctx, username)
	if err != nil {
		s.logger.Error("User service: failed to list messages",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []model.MessageView{}
	}

	return messages, nil
}

func (s *User) getUser(ctx context.Context, username string) (model.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.NewErrUserNotFound(username)
	}
	if err != nil {
		s.logger.Error("User service: failed to get user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func authorizeSelf(caller, username string) error {
	if username == "" {
		return model.NewErrMissingUsername()
	}
	if caller != username {
		return model.NewErrForbidden("only that user can access this resource")
	}
	return nil
}
