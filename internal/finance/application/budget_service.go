package application

import (
	"context"
	"fmt"
	"time"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService struct {
	repo            domain.BudgetRepository
	transactionRepo domain.TransactionRepository
	now             func() time.Time
}

func NewBudgetService(repo domain.BudgetRepository, transactionRepo domain.TransactionRepository) *BudgetService {
	return &BudgetService{
		repo:            repo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// periodWindowStart returns the calendar-day lower bound of a budget's
// current period: the first of the month for monthly budgets, the most
// recent Sunday for weekly ones. AddDate carries the subtraction across
// month boundaries, so a Tuesday on the 1st lands in the previous month
// rather than clamping.
func periodWindowStart(period string, now time.Time) string {
	if period == domain.PeriodMonthly {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(domain.DateLayout)
	}
	return now.AddDate(0, 0, -int(now.Weekday())).Format(domain.DateLayout)
}

// ListBudgets returns the caller's budgets, each with its period spend
// recomputed from the live transaction set. Nothing is cached: a budget's
// spent figure is exactly the sum of matching expense transactions dated on
// or after the period window start.
func (s *BudgetService) ListBudgets(ctx context.Context, subject *auth.Subject) ([]domain.BudgetWithSpent, error) {
	if subject == nil {
		return []domain.BudgetWithSpent{}, nil
	}

	budgets, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	transactions, err := s.transactionRepo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	now := s.now()
	result := make([]domain.BudgetWithSpent, 0, len(budgets))
	for _, budget := range budgets {
		windowStart := periodWindowStart(budget.Period, now)

		spent := decimal.Zero
		for _, tx := range transactions {
			if tx.Type == domain.TypeExpense && tx.Category == budget.Category && tx.Date >= windowStart {
				spent = spent.Add(tx.Amount)
			}
		}

		result = append(result, domain.BudgetWithSpent{Budget: budget, Spent: spent})
	}
	return result, nil
}

func (s *BudgetService) CreateBudget(ctx context.Context, subject *auth.Subject, budget *domain.Budget) error {
	if subject == nil {
		return financeErrors.ErrUnauthorized
	}

	budget.ID = uuid.NewString()
	budget.UserID = subject.ID
	if err := budget.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, *budget); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, subject *auth.Subject, id string, fields domain.Budget) (*domain.Budget, error) {
	if subject == nil {
		return nil, financeErrors.ErrUnauthorized
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(existing.UserID, subject); err != nil {
		return nil, err
	}

	existing.Category = fields.Category
	existing.Limit = fields.Limit
	existing.Period = fields.Period
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	return existing, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, subject *auth.Subject, id string) error {
	if subject == nil {
		return financeErrors.ErrUnauthorized
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(existing.UserID, subject); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
