package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/messagely-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create inserts a message. A missing sender or recipient yields ErrReferenceNotFound.
func (r *MessageRepository) Create(ctx context.Context, message model.Message) (model.Message, error) {
	query := `INSERT INTO messages (from_username, to_username, body, sent_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, from_username, to_username, body, sent_at`

	var saved model.Message
	err := r.db.QueryRowContext(ctx, query,
		message.FromUsername, message.ToUsername, message.Body, message.SentAt,
	).Scan(&saved.ID, &saved.FromUsername, &saved.ToUsername, &saved.Body, &saved.SentAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Message{}, model.ErrReferenceNotFound
		}
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return saved, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (model.MessageDetail, error) {
	query := `SELECT m.id, m.body, m.sent_at, m.read_at,
			  f.username, f.first_name, f.last_name, f.phone,
			  t.username, t.first_name, t.last_name, t.phone
			  FROM messages AS m
			  JOIN users AS f ON f.username = m.from_username
			  JOIN users AS t ON t.username = m.to_username
			  WHERE m.id = $1`

	var d model.MessageDetail
	var readAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Body, &d.SentAt, &readAt,
		&d.FromUser.Username, &d.FromUser.FirstName, &d.FromUser.LastName, &d.FromUser.Phone,
		&d.ToUser.Username, &d.ToUser.FirstName, &d.ToUser.LastName, &d.ToUser.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MessageDetail{}, model.ErrNotFound
		}
		return model.MessageDetail{}, fmt.Errorf("failed to get message by id: %w", err)
	}
	d.ReadAt = timePtr(readAt)

	return d, nil
}

// MarkRead sets read_at once. Later calls keep and return the first timestamp.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64, at time.Time) (model.ReadReceipt, error) {
	query := `UPDATE messages SET read_at = COALESCE(read_at, $2)
			  WHERE id = $1
			  RETURNING id, read_at`

	var receipt model.ReadReceipt
	err := r.db.QueryRowContext(ctx, query, id, at).Scan(&receipt.ID, &receipt.ReadAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReadReceipt{}, model.ErrNotFound
		}
		return model.ReadReceipt{}, fmt.Errorf("failed to mark message read: %w", err)
	}

	return receipt, nil
}

// ListFrom returns messages sent by username joined with each recipient.
func (r *MessageRepository) ListFrom(ctx context.Context, username string) ([]model.MessageView, error) {
	query := `SELECT m.id, m.body, m.sent_at, m.read_at,
			  u.username, u.first_name, u.last_name, u.phone
			  FROM messages AS m
			  JOIN users AS u ON u.username = m.to_username
			  WHERE m.from_username = $1
			  ORDER BY m.id`

	return r.list(ctx, query, username)
}

// ListTo returns messages received by username joined with each sender.
func (r *MessageRepository) ListTo(ctx context.Context, username string) ([]model.MessageView, error) {
	query := `SELECT m.id, m.body, m.sent_at, m.read_at,
			  u.username, u.first_name, u.last_name, u.phone
			  FROM messages AS m
			  JOIN users AS u ON u.username = m.from_username
			  WHERE m.to_username = $1
			  ORDER BY m.id`

	return r.list(ctx, query, username)
}

func (r *MessageRepository) list(ctx context.Context, query string, username string) ([]model.MessageView, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.MessageView, 0)
	for rows.Next() {
		var v model.MessageView
		var readAt sql.NullTime
		err := rows.Scan(
			&v.ID, &v.Body, &v.SentAt, &readAt,
			&v.Counterpart.Username, &v.Counterpart.FirstName, &v.Counterpart.LastName, &v.Counterpart.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		v.ReadAt = timePtr(readAt)
		messages = append(messages, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
