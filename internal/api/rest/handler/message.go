package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

// MessageService defines message operations on behalf of a caller.
type MessageService interface {
	Create(ctx context.Context, caller string, params model.CreateMessageParams) (model.Message, error)
	Get(ctx context.Context, caller string, id int64) (model.MessageDetail, error)
	MarkRead(ctx context.Context, caller string, id int64) (model.ReadReceipt, error)
}

// Message handles HTTP endpoints under /messages.
type Message struct {
	messageService MessageService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewMessage creates a new Message handler.
func NewMessage(messageService MessageService, contextManager model.ContextManager, logger *logger.Logger) *Message {
	return &Message{
		messageService: messageService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createMessageRequest struct {
	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username"`
	Body         string `json:"body"`
}

// Create handles POST /messages. A missing from_username defaults to the caller.
func (h *Message) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r, h.contextManager, h.logger)
	if !ok {
		return
	}

	var req createMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err, h.logger)
		return
	}
	if req.FromUsername == "" {
		req.FromUsername = caller
	}

	msg, err := h.messageService.Create(r.Context(), caller, model.CreateMessageParams{
		FromUsername: req.FromUsername,
		ToUsername:   req.ToUsername,
		Body:         req.Body,
	})
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": createdMessageResponse{
		ID:           msg.ID,
		FromUsername: msg.FromUsername,
		ToUsername:   msg.ToUsername,
		Body:         msg.Body,
		SentAt:       msg.SentAt,
	}})
}

// Get handles GET /messages/{id}.
func (h *Message) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r, h.contextManager, h.logger)
	if !ok {
		return
	}
	id, err := messageID(r)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	d, err := h.messageService.Get(r.Context(), caller, id)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": messageDetailResponse{
		ID:       d.ID,
		Body:     d.Body,
		SentAt:   d.SentAt,
		ReadAt:   d.ReadAt,
		FromUser: toUserSummary(d.FromUser),
		ToUser:   toUserSummary(d.ToUser),
	}})
}

// MarkRead handles POST /messages/{id}/read.
func (h *Message) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r, h.contextManager, h.logger)
	if !ok {
		return
	}
	id, err := messageID(r)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	receipt, err := h.messageService.MarkRead(r.Context(), caller, id)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": readReceiptResponse{
		ID:     receipt.ID,
		ReadAt: receipt.ReadAt,
	}})
}

func messageID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, model.NewErrInvalidMessageID(raw)
	}
	return id, nil
}
