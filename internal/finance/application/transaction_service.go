package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stats is the dashboard headline view. TotalBalance is lifetime while the
// other two fields cover the current calendar month only.
type Stats struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	MonthlySpending decimal.Decimal `json:"monthlySpending"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthTotal struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type TransactionService struct {
	repo domain.TransactionRepository
	now  func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{
		repo: repo,
		now:  time.Now,
	}
}

// ListTransactions returns the caller's transactions, newest first. An
// anonymous caller gets an empty list, not an error.
func (s *TransactionService) ListTransactions(ctx context.Context, subject *auth.Subject) ([]domain.Transaction, error) {
	if subject == nil {
		return []domain.Transaction{}, nil
	}

	transactions, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, subject *auth.Subject, transaction *domain.Transaction) error {
	if subject == nil {
		return financeErrors.ErrUnauthorized
	}

	transaction.ID = uuid.NewString()
	transaction.UserID = subject.ID
	transaction.CreatedAt = s.now()
	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, *transaction); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces the named fields of the caller's transaction.
// The id and owner never change.
func (s *TransactionService) UpdateTransaction(ctx context.Context, subject *auth.Subject, id string, fields domain.Transaction) (*domain.Transaction, error) {
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

	existing.Amount = fields.Amount
	existing.Description = fields.Description
	existing.Category = fields.Category
	existing.Type = fields.Type
	existing.Date = fields.Date
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return existing, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, subject *auth.Subject, id string) error {
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
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// GetStats reduces the caller's full transaction set in one pass. Every
// income adds to the balance and every expense subtracts from it regardless
// of age; only transactions dated within the current calendar month count
// toward the monthly fields.
func (s *TransactionService) GetStats(ctx context.Context, subject *auth.Subject) (Stats, error) {
	stats := Stats{
		TotalBalance:    decimal.Zero,
		MonthlySpending: decimal.Zero,
		MonthlyIncome:   decimal.Zero,
	}
	if subject == nil {
		return stats, nil
	}

	transactions, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return stats, fmt.Errorf("get stats: %w", err)
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(domain.DateLayout)

	for _, tx := range transactions {
		if tx.Type == domain.TypeIncome {
			stats.TotalBalance = stats.TotalBalance.Add(tx.Amount)
			if tx.Date >= startOfMonth {
				stats.MonthlyIncome = stats.MonthlyIncome.Add(tx.Amount)
			}
		} else {
			stats.TotalBalance = stats.TotalBalance.Sub(tx.Amount)
			if tx.Date >= startOfMonth {
				stats.MonthlySpending = stats.MonthlySpending.Add(tx.Amount)
			}
		}
	}

	return stats, nil
}

// GetCategorySummary totals the caller's expenses per category over an
// optional date range (inclusive, YYYY-MM-DD; empty bound means unbounded).
func (s *TransactionService) GetCategorySummary(ctx context.Context, subject *auth.Subject, startDate, endDate string) ([]CategoryTotal, error) {
	if subject == nil {
		return []CategoryTotal{}, nil
	}

	transactions, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("get category summary: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != domain.TypeExpense {
			continue
		}
		if startDate != "" && tx.Date < startDate {
			continue
		}
		if endDate != "" && tx.Date > endDate {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	summary := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		summary = append(summary, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Total.Equal(summary[j].Total) {
			return summary[i].Category < summary[j].Category
		}
		return summary[i].Total.GreaterThan(summary[j].Total)
	})
	return summary, nil
}

// GetMonthlySummary totals income and expenses per calendar month over an
// optional date range, oldest month first.
func (s *TransactionService) GetMonthlySummary(ctx context.Context, subject *auth.Subject, startDate, endDate string) ([]MonthTotal, error) {
	if subject == nil {
		return []MonthTotal{}, nil
	}

	transactions, err := s.repo.FindByUser(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("get monthly summary: %w", err)
	}

	totals := make(map[string]*MonthTotal)
	for _, tx := range transactions {
		if startDate != "" && tx.Date < startDate {
			continue
		}
		if endDate != "" && tx.Date > endDate {
			continue
		}
		month := tx.Date[:len("2006-01")]
		entry, ok := totals[month]
		if !ok {
			entry = &MonthTotal{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			totals[month] = entry
		}
		if tx.Type == domain.TypeIncome {
			entry.Income = entry.Income.Add(tx.Amount)
		} else {
			entry.Expense = entry.Expense.Add(tx.Amount)
		}
	}

	summary := make([]MonthTotal, 0, len(totals))
	for _, entry := range totals {
		summary = append(summary, *entry)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Month < summary[j].Month
	})
	return summary, nil
}
