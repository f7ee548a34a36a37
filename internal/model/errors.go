package model

import (
	"errors"
	"fmt"
)

// Store-level errors. Services translate them into APIError values.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// ErrorKind classifies errors returned to API callers.
type ErrorKind string

const (
	// KindValidation marks missing or malformed input.
	KindValidation ErrorKind = "validation_error"
	// KindNotFound marks an absent referenced entity.
	KindNotFound ErrorKind = "not_found"
	// KindConflict marks a uniqueness violation.
	KindConflict ErrorKind = "conflict"
	// KindForbidden marks an authorization failure.
	KindForbidden ErrorKind = "forbidden"
	// KindInvalidToken marks a credential or session failure.
	KindInvalidToken ErrorKind = "invalid_token"
)

// APIError is an error with a kind and a human-readable message
// safe to return to the caller.
type APIError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any APIError of the same kind, so errors.Is(err, &APIError{Kind: KindForbidden})
// works regardless of message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of an APIError found in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

func NewErrValidation(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func NewErrMissingRegistrationFields() *APIError {
	return NewErrValidation("please provide username, password, first name, last name and phone number")
}

func NewErrMissingCredentials() *APIError {
	return NewErrValidation("please provide a username and password")
}

func NewErrMissingUsername() *APIError {
	return NewErrValidation("please provide a username")
}

func NewErrMissingMessageFields() *APIError {
	return NewErrValidation("please provide a from user, a to user and a message body")
}

func NewErrInvalidMessageID(raw string) *APIError {
	return NewErrValidation(fmt.Sprintf("invalid message id %q", raw))
}

func NewErrWrongCredentials() *APIError {
	return NewErrValidation("wrong password or username")
}

func NewErrUsernameTaken(username string) *APIError {
	return &APIError{Kind: KindConflict, Message: fmt.Sprintf("username %q is already taken", username)}
}

func NewErrUserNotFound(username string) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("user %q not found", username)}
}

func NewErrMessageNotFound(id int64) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("message %d not found", id)}
}

func NewErrForbidden(message string) *APIError {
	return &APIError{Kind: KindForbidden, Message: message}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Kind: KindInvalidToken, Message: "missing authorization token"}
}

func NewErrInvalidToken() *APIError {
	return &APIError{Kind: KindInvalidToken, Message: "invalid authorization token"}
}
