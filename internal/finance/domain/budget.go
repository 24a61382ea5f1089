package domain

import (
	"context"

	"github.com/finta-app/finta/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type BudgetRepository interface {
	Save(ctx context.Context, budget Budget) error
	FindByUser(ctx context.Context, userID string) ([]Budget, error)
	FindByID(ctx context.Context, id string) (*Budget, error)
	Update(ctx context.Context, budget Budget) error
	Delete(ctx context.Context, id string) error
}

type Budget struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Period   string          `json:"period"`
}

// BudgetWithSpent is a budget plus its recomputed period spend. Spent is
// never stored; it is derived from the owner's expense transactions on
// every read.
type BudgetWithSpent struct {
	Budget
	Spent decimal.Decimal `json:"spent"`
}

func (b *Budget) Validate() error {
	if !IsValidBudgetPeriod(b.Period) {
		return errors.ErrInvalidBudgetPeriod
	}
	if !b.Limit.IsPositive() {
		return errors.NewValidationError("Limit must be greater than zero")
	}
	if b.Category == "" {
		return errors.NewValidationError("Category must not be empty")
	}
	return nil
}

func IsValidBudgetPeriod(period string) bool {
	return period == PeriodWeekly || period == PeriodMonthly
}
