package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/messagely-server/internal/model"
)

func TestMessageRepository_Create(t *testing.T) {
	sentAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := model.Message{FromUsername: "alice", ToUsername: "bob", Body: "hi", SentAt: sentAt}
	q := `(?s)^INSERT\s+INTO\s+messages\s*\(from_username,\s*to_username,\s*body,\s*sent_at\).*RETURNING\s+id`
	cols := []string{"id", "from_username", "to_username", "body", "sent_at"}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs("alice", "bob", "hi", sentAt).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "alice", "bob", "hi", sentAt))

		saved, err := repo.Create(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
		assert.Equal(t, "bob", saved.ToUsername)
		assert.False(t, saved.IsRead())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown recipient", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := repo.Create(context.Background(), msg)
		require.ErrorIs(t, err, model.ErrReferenceNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WillReturnError(errors.New("db down"))

		_, err := repo.Create(context.Background(), msg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrReferenceNotFound)
	})
}

func TestMessageRepository_GetByID(t *testing.T) {
	sentAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	readAt := sentAt.Add(time.Hour)
	q := `(?s)^SELECT\s+m\.id.*FROM\s+messages\s+AS\s+m.*WHERE\s+m\.id\s*=\s*\$1`
	cols := []string{
		"id", "body", "sent_at", "read_at",
		"f_username", "f_first_name", "f_last_name", "f_phone",
		"t_username", "t_first_name", "t_last_name", "t_phone",
	}

	t.Run("unread", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(
				int64(1), "hi", sentAt, nil,
				"alice", "Alice", "Smith", "+15550001",
				"bob", "Bob", "Jones", "+15550002",
			))

		got, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Sender())
		assert.Equal(t, "bob", got.Recipient())
		assert.Equal(t, "Jones", got.ToUser.LastName)
		assert.Nil(t, got.ReadAt)
	})

	t.Run("read", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(
				int64(1), "hi", sentAt, readAt,
				"alice", "Alice", "Smith", "+15550001",
				"bob", "Bob", "Jones", "+15550002",
			))

		got, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, got.ReadAt)
		assert.Equal(t, readAt, *got.ReadAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestMessageRepository_MarkRead(t *testing.T) {
	at := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	first := at.Add(-time.Hour)
	q := `(?s)^UPDATE\s+messages\s+SET\s+read_at\s*=\s*COALESCE\(read_at,\s*\$2\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+id,\s*read_at`

	t.Run("first read", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(1), at).
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}).AddRow(int64(1), at))

		receipt, err := repo.MarkRead(context.Background(), 1, at)
		require.NoError(t, err)
		assert.Equal(t, model.ReadReceipt{ID: 1, ReadAt: at}, receipt)
	})

	t.Run("already read keeps first timestamp", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(1), at).
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}).AddRow(int64(1), first))

		receipt, err := repo.MarkRead(context.Background(), 1, at)
		require.NoError(t, err)
		assert.Equal(t, first, receipt.ReadAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(q).
			WithArgs(int64(99), at).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.MarkRead(context.Background(), 99, at)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestMessageRepository_Lists(t *testing.T) {
	sentAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "body", "sent_at", "read_at", "username", "first_name", "last_name", "phone"}

	t.Run("from joins recipient", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(`(?s)JOIN\s+users\s+AS\s+u\s+ON\s+u\.username\s*=\s*m\.to_username\s+WHERE\s+m\.from_username\s*=\s*\$1`).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), "hi", sentAt, nil, "bob", "Bob", "Jones", "+15550002"))

		got, err := repo.ListFrom(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].Counterpart.Username)
		assert.Nil(t, got[0].ReadAt)
	})

	t.Run("to joins sender", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(`(?s)JOIN\s+users\s+AS\s+u\s+ON\s+u\.username\s*=\s*m\.from_username\s+WHERE\s+m\.to_username\s*=\s*\$1`).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), "hi", sentAt, sentAt, "alice", "Alice", "Smith", "+15550001"))

		got, err := repo.ListTo(context.Background(), "bob")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "alice", got[0].Counterpart.Username)
		require.NotNil(t, got[0].ReadAt)
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(`(?s)FROM\s+messages`).
			WithArgs("carol").
			WillReturnRows(sqlmock.NewRows(cols))

		got, err := repo.ListTo(context.Background(), "carol")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(`(?s)FROM\s+messages`).
			WillReturnError(errors.New("db down"))

		_, err := repo.ListFrom(context.Background(), "alice")
		require.Error(t, err)
	})
}
