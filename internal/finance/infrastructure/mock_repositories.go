package infrastructure

import (
	"context"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository for
// service tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
}

func (m *MockTransactionRepository) Save(_ context.Context, transaction domain.Transaction) error {
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

// FindByUser returns the user's transactions newest first, mirroring the
// SQL ordering.
func (m *MockTransactionRepository) FindByUser(_ context.Context, userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for i := len(m.Transactions) - 1; i >= 0; i-- {
		if m.Transactions[i].UserID == userID {
			transactions = append(transactions, m.Transactions[i])
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == id {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Update(_ context.Context, transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Delete(_ context.Context, id string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

// MockBudgetRepository is an in-memory BudgetRepository for service tests.
type MockBudgetRepository struct {
	Budgets []domain.Budget
}

func (m *MockBudgetRepository) Save(_ context.Context, budget domain.Budget) error {
	m.Budgets = append(m.Budgets, budget)
	return nil
}

func (m *MockBudgetRepository) FindByUser(_ context.Context, userID string) ([]domain.Budget, error) {
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}

func (m *MockBudgetRepository) FindByID(_ context.Context, id string) (*domain.Budget, error) {
	for _, budget := range m.Budgets {
		if budget.ID == id {
			found := budget
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockBudgetRepository) Update(_ context.Context, budget domain.Budget) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budget.ID {
			m.Budgets[i] = budget
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockBudgetRepository) Delete(_ context.Context, id string) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == id {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

// MockCategoryRepository is an in-memory CategoryRepository for service
// tests.
type MockCategoryRepository struct {
	Categories []domain.Category
}

func (m *MockCategoryRepository) Save(_ context.Context, category domain.Category) error {
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(_ context.Context, userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, id string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) Delete(_ context.Context, id string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}
