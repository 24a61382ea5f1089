package domain

import (
	"context"
	"fmt"

	"github.com/finta-app/finta/internal/finance/errors"
)

type CategoryRepository interface {
	Save(ctx context.Context, category Category) error
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type Category struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId,omitempty"`
	Name   string  `json:"name"`
	Icon   *string `json:"icon,omitempty"`
	Color  *string `json:"color,omitempty"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	return nil
}

// defaultCategories is the built-in set shown to anonymous callers and to
// users who have not created any category of their own.
var defaultCategories = []struct {
	name, icon, color string
}{
	{"Groceries", "shopping-cart", "#22c55e"},
	{"Dining", "utensils", "#f97316"},
	{"Transport", "car", "#3b82f6"},
	{"Entertainment", "film", "#a855f7"},
	{"Shopping", "shopping-bag", "#ec4899"},
	{"Utilities", "zap", "#eab308"},
	{"Health", "heart", "#ef4444"},
	{"Income", "wallet", "#10b981"},
	{"Other", "more-horizontal", "#6b7280"},
}

// DefaultCategories returns a fresh copy of the built-in category set, each
// entry carrying a synthetic identifier so clients can key on it.
func DefaultCategories() []Category {
	categories := make([]Category, len(defaultCategories))
	for i, c := range defaultCategories {
		icon, color := c.icon, c.color
		categories[i] = Category{
			ID:    fmt.Sprintf("default-%d", i),
			Name:  c.name,
			Icon:  &icon,
			Color: &color,
		}
	}
	return categories
}
