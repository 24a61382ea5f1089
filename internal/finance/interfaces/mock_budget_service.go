package interfaces

import (
	"context"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
)

type MockBudgetService struct {
	budgets []domain.BudgetWithSpent
	err     error

	createdBudget *domain.Budget
	deletedID     string
}

func (m *MockBudgetService) ListBudgets(_ context.Context, _ *auth.Subject) ([]domain.BudgetWithSpent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.budgets, nil
}

func (m *MockBudgetService) CreateBudget(_ context.Context, _ *auth.Subject, budget *domain.Budget) error {
	if m.err != nil {
		return m.err
	}
	m.createdBudget = budget
	return nil
}

func (m *MockBudgetService) UpdateBudget(_ context.Context, _ *auth.Subject, id string, fields domain.Budget) (*domain.Budget, error) {
	if m.err != nil {
		return nil, m.err
	}
	fields.ID = id
	return &fields, nil
}

func (m *MockBudgetService) DeleteBudget(_ context.Context, _ *auth.Subject, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}
