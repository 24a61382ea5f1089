package interfaces

import (
	"context"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error

	createdCategory *domain.Category
	deletedID       string
}

func (m *MockCategoryService) ListCategories(_ context.Context, _ *auth.Subject) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(_ context.Context, _ *auth.Subject, category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	m.createdCategory = category
	return nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, _ *auth.Subject, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}
