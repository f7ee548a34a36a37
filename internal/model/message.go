package model

import (
	"context"
	"time"
)

// MessageStore defines persistence operations for messages.
type MessageStore interface {
	Create(ctx context.Context, message Message) (Message, error)
	GetByID(ctx context.Context, id int64) (MessageDetail, error)
	MarkRead(ctx context.Context, id int64, at time.Time) (ReadReceipt, error)
	ListFrom(ctx context.Context, username string) ([]MessageView, error)
	ListTo(ctx context.Context, username string) ([]MessageView, error)
}

// Message represents a stored message.
type Message struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       *time.Time
}

// IsRead reports whether the recipient has already marked the message read.
func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// MessageDetail is a message with both parties' public profiles.
type MessageDetail struct {
	ID       int64
	Body     string
	SentAt   time.Time
	ReadAt   *time.Time
	FromUser UserSummary
	ToUser   UserSummary
}

// Sender returns the username of the message author.
func (d MessageDetail) Sender() string {
	return d.FromUser.Username
}

// Recipient returns the username of the message addressee.
func (d MessageDetail) Recipient() string {
	return d.ToUser.Username
}

// MessageView is a list item joined with the counterpart's public profile:
// the recipient for outgoing lists, the sender for incoming ones.
type MessageView struct {
	ID          int64
	Body        string
	SentAt      time.Time
	ReadAt      *time.Time
	Counterpart UserSummary
}

// ReadReceipt is returned by a read-marking operation.
type ReadReceipt struct {
	ID     int64
	ReadAt time.Time
}

// CreateMessageParams contains parameters to create a message.
type CreateMessageParams struct {
	FromUsername string
	ToUsername   string
	Body         string
}
