package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	createUser(ctx context.Context, user *User) error
	getUserByClerkID(ctx context.Context, clerkID string) (*User, error)
	updateUser(ctx context.Context, user *User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, clerk_id, email, first_name, last_name, image_url, currency, locale, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.ClerkID, user.Email, user.FirstName, user.LastName,
		user.ImageURL, user.Currency, user.Locale, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *userRepository) getUserByClerkID(ctx context.Context, clerkID string) (*User, error) {
	query := `
		SELECT id, clerk_id, email, first_name, last_name, image_url, currency, locale, created_at, updated_at
		FROM users
		WHERE clerk_id = $1
	`

	var user User
	err := r.db.QueryRowContext(ctx, query, clerkID).Scan(
		&user.ID, &user.ClerkID, &user.Email, &user.FirstName, &user.LastName,
		&user.ImageURL, &user.Currency, &user.Locale, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) updateUser(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET email = $2,
		    first_name = $3,
		    last_name = $4,
		    image_url = $5,
		    currency = $6,
		    locale = $7,
		    updated_at = $8
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.ImageURL, user.Currency, user.Locale, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return nil
}
