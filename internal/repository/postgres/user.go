package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/messagely-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING username, password, first_name, last_name, phone, join_at, last_login_at`

	var saved model.User
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone,
		user.JoinedAt, nullTime(user.LastLoginAt),
	).Scan(
		&saved.Username, &saved.PasswordHash, &saved.FirstName, &saved.LastName, &saved.Phone,
		&saved.JoinedAt, &lastLogin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	saved.LastLoginAt = lastLogin.Time

	return saved, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT username, password, first_name, last_name, phone, join_at, last_login_at
			  FROM users WHERE username = $1`

	var user model.User
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Phone,
		&user.JoinedAt, &lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	user.LastLoginAt = lastLogin.Time

	return user, nil
}

func (r *UserRepository) TouchLogin(ctx context.Context, username string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.UserSummary, error) {
	query := `SELECT username, first_name, last_name, phone
			  FROM users ORDER BY username`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserSummary, 0)
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
