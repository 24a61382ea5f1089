package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

var transactionColumns = []string{"id", "user_id", "amount", "description", "category", "type", "date", "created_at"}

func TestTransactionRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs("tx-1", "user-1", decimal.NewFromInt(10), "Lunch", "Dining", "expense", "2024-01-10", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), domain.Transaction{
		ID: "tx-1", UserID: "user-1", Amount: decimal.NewFromInt(10),
		Description: "Lunch", Category: "Dining", Type: domain.TypeExpense,
		Date: "2024-01-10", CreatedAt: createdAt,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindByUser(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(transactionColumns).
		AddRow("tx-2", "user-1", "25.00", "Dinner", "Dining", "expense", "2024-01-09", createdAt).
		AddRow("tx-1", "user-1", "10.00", "Lunch", "Dining", "expense", "2024-01-08", createdAt.Add(-time.Hour))
	mock.ExpectQuery(`SELECT .+ FROM transactions\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	transactions, err := repo.FindByUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "tx-2", transactions[0].ID)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(25)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM transactions\s+WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	transaction, err := repo.FindByID(context.Background(), "ghost")

	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_FindByID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(transactionColumns).
		AddRow("tx-1", "user-1", "10.00", "Lunch", "Dining", "expense", "2024-01-10", createdAt)
	mock.ExpectQuery(`SELECT .+ FROM transactions\s+WHERE id = \$1`).
		WithArgs("tx-1").
		WillReturnRows(rows)

	transaction, err := repo.FindByID(context.Background(), "tx-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", transaction.UserID)
	assert.Equal(t, "2024-01-10", transaction.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	mock.ExpectExec(`UPDATE transactions\s+SET amount = \$2`).
		WithArgs("tx-1", decimal.NewFromInt(25), "Dinner", "Dining", "expense", "2024-01-10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), domain.Transaction{
		ID: "tx-1", Amount: decimal.NewFromInt(25), Description: "Dinner",
		Category: "Dining", Type: domain.TypeExpense, Date: "2024-01-10",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	mock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
		WithArgs("tx-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "tx-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_SaveWrapsDBError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewTransactionRepository(db)

	mock.ExpectExec(`INSERT INTO transactions`).
		WillReturnError(errors.New("db down"))

	err := repo.Save(context.Background(), domain.Transaction{ID: "tx-1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not save transaction")
}
