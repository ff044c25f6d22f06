package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freelancehub/backend/internal/api/domain"
	"github.com/freelancehub/backend/internal/api/model"
)

const userColumns = `
	user_id, username, email, password_hash, role,
	first_name, last_name, bio, created_at, updated_at
`

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			user_id, username, email, password_hash, role,
			first_name, last_name, bio, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *Storage) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	err := s.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	err := s.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, bio = $5, updated_at = $6
		WHERE user_id = $1
	`

	res, err := s.db.ExecContext(
		ctx,
		query,
		user.UserID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.UpdatedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
