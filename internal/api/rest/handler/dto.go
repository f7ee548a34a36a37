package handler

import (
	"time"

	"github.com/dtroode/messagely-server/internal/model"
)

type userSummaryResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func toUserSummary(u model.UserSummary) userSummaryResponse {
	return userSummaryResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

type userProfileResponse struct {
	userSummaryResponse
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toUserProfile(p model.UserProfile) userProfileResponse {
	resp := userProfileResponse{
		userSummaryResponse: toUserSummary(p.UserSummary),
		JoinAt:              p.JoinedAt,
	}
	if !p.LastLoginAt.IsZero() {
		last := p.LastLoginAt
		resp.LastLoginAt = &last
	}
	return resp
}

// incomingMessageResponse is a list item of messages sent to a user.
type incomingMessageResponse struct {
	ID       int64               `json:"id"`
	Body     string              `json:"body"`
	SentAt   time.Time           `json:"sent_at"`
	ReadAt   *time.Time          `json:"read_at"`
	FromUser userSummaryResponse `json:"from_user"`
}

// outgoingMessageResponse is a list item of messages sent by a user.
type outgoingMessageResponse struct {
	ID     int64               `json:"id"`
	Body   string              `json:"body"`
	SentAt time.Time           `json:"sent_at"`
	ReadAt *time.Time          `json:"read_at"`
	ToUser userSummaryResponse `json:"to_user"`
}

type messageDetailResponse struct {
	ID       int64               `json:"id"`
	Body     string              `json:"body"`
	SentAt   time.Time           `json:"sent_at"`
	ReadAt   *time.Time          `json:"read_at"`
	FromUser userSummaryResponse `json:"from_user"`
	ToUser   userSummaryResponse `json:"to_user"`
}

type createdMessageResponse struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

type readReceiptResponse struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}
