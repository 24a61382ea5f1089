package infrastructure

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

func TestBudgetRepository_FindByUser(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewBudgetRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "category", "limit_amount", "period"}).
		AddRow("b-1", "user-1", "Dining", "120.00", "weekly").
		AddRow("b-2", "user-1", "Groceries", "200.00", "monthly")
	mock.ExpectQuery(`SELECT .+ FROM budgets\s+WHERE user_id = \$1\s+ORDER BY category`).
		WithArgs("user-1").
		WillReturnRows(rows)

	budgets, err := repo.FindByUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, budgets, 2)
	assert.Equal(t, "Dining", budgets[0].Category)
	assert.True(t, budgets[0].Limit.Equal(decimal.NewFromInt(120)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewBudgetRepository(db)

	mock.ExpectExec(`INSERT INTO budgets`).
		WithArgs("b-1", "user-1", "Groceries", decimal.NewFromInt(200), "monthly").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), domain.Budget{
		ID: "b-1", UserID: "user-1", Category: "Groceries",
		Limit: decimal.NewFromInt(200), Period: domain.PeriodMonthly,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewBudgetRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM budgets\s+WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	budget, err := repo.FindByID(context.Background(), "ghost")

	assert.Nil(t, budget)
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
}
