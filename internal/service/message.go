package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

type Message struct {
	messageStore model.MessageStore
	metrics      model.DomainMetrics
	logger       *logger.Logger
	now          func() time.Time
}

func NewMessage(
	messageStore model.MessageStore,
	metrics model.DomainMetrics,
	logger *logger.Logger,
) *Message {
	return &Message{
		messageStore: messageStore,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Create stores a message from caller. The sender must be the caller.
func (s *Message) Create(ctx context.Context, caller string, params model.CreateMessageParams) (model.Message, error) {
	if params.FromUsername == "" || params.ToUsername == "" || params.Body == "" {
		return model.Message{}, model.NewErrMissingMessageFields()
	}
	if caller != params.FromUsername {
		return model.Message{}, model.NewErrForbidden("cannot send a message on behalf of another user")
	}

	s.logger.Debug("Message service: creating message",
		"from", params.FromUsername,
		"to", params.ToUsername)

	message, err := s.messageStore.Create(ctx, model.Message{
		FromUsername: params.FromUsername,
		ToUsername:   params.ToUsername,
		Body:         params.Body,
		SentAt:       s.now(),
	})
	if errors.Is(err, model.ErrReferenceNotFound) {
		return model.Message{}, model.NewErrUserNotFound(params.ToUsername)
	}
	if err != nil {
		s.logger.Error("Message service: failed to create message",
			"from", params.FromUsername,
			"to", params.ToUsername,
			"error", err.Error())
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	s.metrics.MessageCreated()
	s.logger.Info("Message service: message created",
		"id", message.ID,
		"from", message.FromUsername,
		"to", message.ToUsername)

	return message, nil
}

// Get returns a message visible to caller as its sender or recipient.
func (s *Message) Get(ctx context.Context, caller string, id int64) (model.MessageDetail, error) {
	detail, err := s.get(ctx, id)
	if err != nil {
		return model.MessageDetail{}, err
	}
	if caller != detail.Sender() && caller != detail.Recipient() {
		return model.MessageDetail{}, model.NewErrForbidden("cannot read this message")
	}

	return detail, nil
}

// MarkRead sets the read time of a message. Only the recipient may do it,
// and only the first call changes anything.
func (s *Message) MarkRead(ctx context.Context, caller string, id int64) (model.ReadReceipt, error) {
	detail, err := s.get(ctx, id)
	if err != nil {
		return model.ReadReceipt{}, err
	}
	if caller != detail.Recipient() {
		return model.ReadReceipt{}, model.NewErrForbidden("cannot set this message to read")
	}

	receipt, err := s.messageStore.MarkRead(ctx, id, s.now())
	if errors.Is(err, model.ErrNotFound) {
		return model.ReadReceipt{}, model.NewErrMessageNotFound(id)
	}
	if err != nil {
		s.logger.Error("Message service: failed to mark message read",
			"id", id,
			"error", err.Error())
		return model.ReadReceipt{}, fmt.Errorf("failed to mark message read: %w", err)
	}

	if detail.ReadAt == nil {
		s.metrics.MessageRead()
		s.logger.Info("Message service: message read",
			"id", id,
			"by", caller)
	}

	return receipt, nil
}

func (s *Message) get(ctx context.Context, id int64) (model.MessageDetail, error) {
	detail, err := s.messageStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.MessageDetail{}, model.NewErrMessageNotFound(id)
	}
	if err != nil {
		s.logger.Error("Message service: failed to get message",
			"id", id,
			"error", err.Error())
		return model.MessageDetail{}, fmt.Errorf("failed to get message by id: %w", err)
	}

	return detail, nil
}
