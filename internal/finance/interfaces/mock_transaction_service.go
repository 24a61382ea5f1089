package interfaces

import (
	"context"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/application"
	"github.com/finta-app/finta/internal/finance/domain"
)

type MockTransactionService struct {
	transactions   []domain.Transaction
	stats          application.Stats
	categoryTotals []application.CategoryTotal
	monthTotals    []application.MonthTotal
	err            error

	createdTransaction *domain.Transaction
	deletedID          string
}

func (m *MockTransactionService) ListTransactions(_ context.Context, _ *auth.Subject) ([]domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

func (m *MockTransactionService) CreateTransaction(_ context.Context, _ *auth.Subject, transaction *domain.Transaction) error {
	if m.err != nil {
		return m.err
	}
	m.createdTransaction = transaction
	return nil
}

func (m *MockTransactionService) UpdateTransaction(_ context.Context, _ *auth.Subject, id string, fields domain.Transaction) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	fields.ID = id
	return &fields, nil
}

func (m *MockTransactionService) DeleteTransaction(_ context.Context, _ *auth.Subject, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

func (m *MockTransactionService) GetStats(_ context.Context, _ *auth.Subject) (application.Stats, error) {
	if m.err != nil {
		return application.Stats{}, m.err
	}
	return m.stats, nil
}

func (m *MockTransactionService) GetCategorySummary(_ context.Context, _ *auth.Subject, _, _ string) ([]application.CategoryTotal, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categoryTotals, nil
}

func (m *MockTransactionService) GetMonthlySummary(_ context.Context, _ *auth.Subject, _, _ string) ([]application.MonthTotal, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.monthTotals, nil
}
