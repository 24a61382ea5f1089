package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, icon, color)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.UserID, category.Name, category.Icon, category.Color,
	)
	if err != nil {
		return fmt.Errorf("could not save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, icon, color
		FROM categories
		WHERE user_id = $1
		ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name,
			&category.Icon, &category.Color); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, icon, color
		FROM categories
		WHERE id = $1`, id).
		Scan(&category.ID, &category.UserID, &category.Name, &category.Icon, &category.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}
	return nil
}
