package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	TouchLogin(ctx context.Context, username string, at time.Time) error
	List(ctx context.Context) ([]UserSummary, error)
}

// User represents a stored user with its password hash.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	JoinedAt     time.Time
	LastLoginAt  time.Time
}

// Summary returns the public part of the user profile.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// Profile returns the full profile without credential material.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserSummary: u.Summary(),
		JoinedAt:    u.JoinedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// UserSummary is the public profile embedded into messages and user listings.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

// UserProfile is the full profile visible only to its owner.
type UserProfile struct {
	UserSummary
	JoinedAt    time.Time
	LastLoginAt time.Time
}

// RegisterParams contains fields required to register a user.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}
