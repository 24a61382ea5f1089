package domain

import (
	"context"
	"time"

	"github.com/finta-app/finta/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

const maxDescriptionLength = 200

// DateLayout is the calendar-day form every transaction date is stored in.
// Dates are compared as strings, which is equivalent to chronological order
// for this layout.
const DateLayout = "2006-01-02"

type TransactionRepository interface {
	Save(ctx context.Context, transaction Transaction) error
	FindByUser(ctx context.Context, userID string) ([]Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, transaction Transaction) error
	Delete(ctx context.Context, id string) error
}

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.ErrInvalidTransactionType
	}
	if !t.Amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	if !IsValidDate(t.Date) {
		return errors.NewInvalidDateError(t.Date)
	}
	if len(t.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
