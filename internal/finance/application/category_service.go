package application

import (
	"context"
	"fmt"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
	"github.com/google/uuid"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories returns the caller's stored categories. Anonymous callers
// and users who have not created any category get the built-in default set
// instead. The two are never merged: one stored category hides all nine
// defaults.
func (s *CategoryService) ListCategories(ctx context.Context, subject *auth.Subject) ([]domain.Category, error) {
	if subject == nil {
		return domain.DefaultCategories(), nil
	}

	categories, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return domain.DefaultCategories(), nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, subject *auth.Subject, category *domain.Category) error {
	if subject == nil {
		return financeErrors.ErrUnauthorized
	}

	category.ID = uuid.NewString()
	category.UserID = subject.ID
	if err := category.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, *category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, subject *auth.Subject, id string) error {
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
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
