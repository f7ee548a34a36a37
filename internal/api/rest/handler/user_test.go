package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/messagely-server/internal/api/rest/context"
	"github.com/dtroode/messagely-server/internal/mocks"
	"github.com/dtroode/messagely-server/internal/model"
	"github.com/dtroode/messagely-server/internal/testutil"
)

var testTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newUserHandler(t *testing.T) (*User, *mocks.UserService) {
	t.Helper()
	svc := mocks.NewUserService(t)
	return NewUser(svc, restctx.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestUser_List(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("ListAll", mock.Anything).Return([]model.UserSummary{
			{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "+15550001"},
		}, nil).Once()

		w := serve(t, http.MethodGet, "/users", "/users", "", "alice", h.List)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"users":[{"username":"alice","first_name":"Alice","last_name":"Smith","phone":"+15550001"}]}`,
			w.Body.String())
	})

	t.Run("empty list", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("ListAll", mock.Anything).Return([]model.UserSummary{}, nil).Once()

		w := serve(t, http.MethodGet, "/users", "/users", "", "alice", h.List)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"users":[]}`, w.Body.String())
	})
}

func TestUser_Get(t *testing.T) {
	t.Run("own profile", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("GetProfile", mock.Anything, "alice", "alice").Return(model.UserProfile{
			UserSummary: model.UserSummary{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "+15550001"},
			JoinedAt:    testTime,
			LastLoginAt: testTime,
		}, nil).Once()

		w := serve(t, http.MethodGet, "/users/{username}", "/users/alice", "", "alice", h.Get)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "alice", resp.User["username"])
		assert.Equal(t, "2024-01-01T12:00:00Z", resp.User["join_at"])
		assert.Equal(t, "2024-01-01T12:00:00Z", resp.User["last_login_at"])
		assert.NotContains(t, resp.User, "password")
	})

	t.Run("forbidden", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("GetProfile", mock.Anything, "bob", "alice").
			Return(model.UserProfile{}, model.NewErrForbidden("only that user can access this resource")).Once()

		w := serve(t, http.MethodGet, "/users/{username}", "/users/alice", "", "bob", h.Get)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "forbidden", decodeError(t, w).Error.Kind)
	})

	t.Run("no caller", func(t *testing.T) {
		h, _ := newUserHandler(t)

		w := serve(t, http.MethodGet, "/users/{username}", "/users/alice", "", "", h.Get)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_token", decodeError(t, w).Error.Kind)
	})
}

func TestUser_MessageLists(t *testing.T) {
	views := []model.MessageView{{
		ID:          1,
		Body:        "hi",
		SentAt:      testTime,
		Counterpart: model.UserSummary{Username: "bob", FirstName: "Bob", LastName: "Jones", Phone: "+15550002"},
	}}

	t.Run("to embeds from_user", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("MessagesTo", mock.Anything, "alice", "alice").Return(views, nil).Once()

		w := serve(t, http.MethodGet, "/users/{username}/to", "/users/alice/to", "", "alice", h.MessagesTo)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"messages":[{"id":1,"body":"hi","sent_at":"2024-01-01T12:00:00Z","read_at":null,
			"from_user":{"username":"bob","first_name":"Bob","last_name":"Jones","phone":"+15550002"}}]}`,
			w.Body.String())
	})

	t.Run("from embeds to_user", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("MessagesFrom", mock.Anything, "alice", "alice").Return(views, nil).Once()

		w := serve(t, http.MethodGet, "/users/{username}/from", "/users/alice/from", "", "alice", h.MessagesFrom)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"messages":[{"id":1,"body":"hi","sent_at":"2024-01-01T12:00:00Z","read_at":null,
			"to_user":{"username":"bob","first_name":"Bob","last_name":"Jones","phone":"+15550002"}}]}`,
			w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("MessagesTo", mock.Anything, "carol", "carol").Return([]model.MessageView{}, nil).Once()

		w := serve(t, http.MethodGet, "/users/{username}/to", "/users/carol/to", "", "carol", h.MessagesTo)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		h, svc := newUserHandler(t)
		svc.On("MessagesFrom", mock.Anything, "ghost", "ghost").Return(nil, model.NewErrUserNotFound("ghost")).Once()

		w := serve(t, http.MethodGet, "/users/{username}/from", "/users/ghost/from", "", "ghost", h.MessagesFrom)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
