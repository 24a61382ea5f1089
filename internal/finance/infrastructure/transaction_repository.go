package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, amount, description, category, type, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Description,
		transaction.Category, transaction.Type, transaction.Date, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not save transaction: %w", err)
	}
	return nil
}

// FindByUser returns the user's transactions newest first.
func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, amount, description, category, type, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Amount,
			&transaction.Description, &transaction.Category, &transaction.Type,
			&transaction.Date, &transaction.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, amount, description, category, type, date, created_at
		FROM transactions
		WHERE id = $1`, id).
		Scan(&transaction.ID, &transaction.UserID, &transaction.Amount,
			&transaction.Description, &transaction.Category, &transaction.Type,
			&transaction.Date, &transaction.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		SET amount = $2, description = $3, category = $4, type = $5, date = $6
		WHERE id = $1`,
		transaction.ID, transaction.Amount, transaction.Description,
		transaction.Category, transaction.Type, transaction.Date,
	)
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}
	return nil
}
