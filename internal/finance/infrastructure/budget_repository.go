package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(ctx context.Context, budget domain.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (id, user_id, category, limit_amount, period)
		VALUES ($1, $2, $3, $4, $5)`,
		budget.ID, budget.UserID, budget.Category, budget.Limit, budget.Period,
	)
	if err != nil {
		return fmt.Errorf("could not save budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) FindByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, category, limit_amount, period
		FROM budgets
		WHERE user_id = $1
		ORDER BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category,
			&budget.Limit, &budget.Period); err != nil {
			return nil, fmt.Errorf("could not scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) FindByID(ctx context.Context, id string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category, limit_amount, period
		FROM budgets
		WHERE id = $1`, id).
		Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Limit, &budget.Period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find budget: %w", err)
	}
	return &budget, nil
}

func (r *BudgetRepository) Update(ctx context.Context, budget domain.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE budgets
		SET category = $2, limit_amount = $3, period = $4
		WHERE id = $1`,
		budget.ID, budget.Category, budget.Limit, budget.Period,
	)
	if err != nil {
		return fmt.Errorf("could not update budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete budget: %w", err)
	}
	return nil
}
