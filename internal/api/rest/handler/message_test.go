package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/messagely-server/internal/api/rest/context"
	"github.com/dtroode/messagely-server/internal/mocks"
	"github.com/dtroode/messagely-server/internal/model"
	"github.com/dtroode/messagely-server/internal/testutil"
)

func newMessageHandler(t *testing.T) (*Message, *mocks.MessageService) {
	t.Helper()
	svc := mocks.NewMessageService(t)
	return NewMessage(svc, restctx.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestMessage_Create(t *testing.T) {
	created := model.Message{ID: 3, FromUsername: "alice", ToUsername: "bob", Body: "hi", SentAt: testTime}

	t.Run("explicit sender", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("Create", mock.Anything, "alice", model.CreateMessageParams{
			FromUsername: "alice", ToUsername: "bob", Body: "hi",
		}).Return(created, nil).Once()

		w := serve(t, http.MethodPost, "/messages", "/messages",
			`{"from_username":"alice","to_username":"bob","body":"hi"}`, "alice", h.Create)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":{"id":3,"from_username":"alice","to_username":"bob","body":"hi",
			"sent_at":"2024-01-01T12:00:00Z"}}`, w.Body.String())
	})

	t.Run("sender defaults to caller", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("Create", mock.Anything, "alice", model.CreateMessageParams{
			FromUsername: "alice", ToUsername: "bob", Body: "hi",
		}).Return(created, nil).Once()

		w := serve(t, http.MethodPost, "/messages", "/messages",
			`{"to_username":"bob","body":"hi"}`, "alice", h.Create)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("spoofed sender", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("Create", mock.Anything, "alice", mock.Anything).
			Return(model.Message{}, model.NewErrForbidden("cannot send a message on behalf of another user")).Once()

		w := serve(t, http.MethodPost, "/messages", "/messages",
			`{"from_username":"bob","to_username":"alice","body":"hi"}`, "alice", h.Create)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "forbidden", decodeError(t, w).Error.Kind)
	})

	t.Run("internal error", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("Create", mock.Anything, "alice", mock.Anything).Return(model.Message{}, assert.AnError).Once()

		w := serve(t, http.MethodPost, "/messages", "/messages",
			`{"to_username":"bob","body":"hi"}`, "alice", h.Create)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMessage_Get(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		readAt := testTime.Add(1)
		svc.On("Get", mock.Anything, "bob", int64(1)).Return(model.MessageDetail{
			ID:       1,
			Body:     "hi",
			SentAt:   testTime,
			ReadAt:   &readAt,
			FromUser: model.UserSummary{Username: "alice"},
			ToUser:   model.UserSummary{Username: "bob"},
		}, nil).Once()

		w := serve(t, http.MethodGet, "/messages/{id}", "/messages/1", "", "bob", h.Get)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"from_user":{"username":"alice"`)
		assert.Contains(t, w.Body.String(), `"to_user":{"username":"bob"`)
		assert.Contains(t, w.Body.String(), `"read_at":"2024-01-01T12:00:00.000000001Z"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newMessageHandler(t)

		for _, id := range []string{"abc", "0", "-1"} {
			w := serve(t, http.MethodGet, "/messages/{id}", "/messages/"+id, "", "bob", h.Get)
			assert.Equal(t, http.StatusBadRequest, w.Code, id)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("Get", mock.Anything, "bob", int64(99)).Return(model.MessageDetail{}, model.NewErrMessageNotFound(99)).Once()

		w := serve(t, http.MethodGet, "/messages/{id}", "/messages/99", "", "bob", h.Get)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMessage_MarkRead(t *testing.T) {
	t.Run("receipt", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("MarkRead", mock.Anything, "bob", int64(1)).Return(model.ReadReceipt{ID: 1, ReadAt: testTime}, nil).Once()

		w := serve(t, http.MethodPost, "/messages/{id}/read", "/messages/1/read", "", "bob", h.MarkRead)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":{"id":1,"read_at":"2024-01-01T12:00:00Z"}}`, w.Body.String())
	})

	t.Run("not the recipient", func(t *testing.T) {
		h, svc := newMessageHandler(t)
		svc.On("MarkRead", mock.Anything, "alice", int64(1)).
			Return(model.ReadReceipt{}, model.NewErrForbidden("cannot set this message to read")).Once()

		w := serve(t, http.MethodPost, "/messages/{id}/read", "/messages/1/read", "", "alice", h.MarkRead)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
