package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/application"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type TransactionServiceInterface interface {
	ListTransactions(ctx context.Context, subject *auth.Subject) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, subject *auth.Subject, transaction *domain.Transaction) error
	UpdateTransaction(ctx context.Context, subject *auth.Subject, id string, fields domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, subject *auth.Subject, id string) error
	GetStats(ctx context.Context, subject *auth.Subject) (application.Stats, error)
	GetCategorySummary(ctx context.Context, subject *auth.Subject, startDate, endDate string) ([]application.CategoryTotal, error)
	GetMonthlySummary(ctx context.Context, subject *auth.Subject, startDate, endDate string) ([]application.MonthTotal, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	transactions, err := h.service.ListTransactions(r.Context(), subject)
	if err != nil {
		slog.Error("list transactions failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := domain.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Date:        req.Date,
	}
	if err := h.service.CreateTransaction(r.Context(), subject, &transaction); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create transaction failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := domain.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Date:        req.Date,
	}
	updated, err := h.service.UpdateTransaction(r.Context(), subject, id, fields)
	if err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, financeErrors.ErrNotFound.Error())
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("update transaction failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    updated,
	})
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.service.DeleteTransaction(r.Context(), subject, id); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, financeErrors.ErrNotFound.Error())
			return
		}
		slog.Error("delete transaction failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully deleted.",
	})
}

func (h *TransactionHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	stats, err := h.service.GetStats(r.Context(), subject)
	if err != nil {
		slog.Error("get stats failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve stats")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   stats,
	})
}

func (h *TransactionHandler) GetCategorySummary(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	startDate, endDate, ok := dateRangeParams(w, r, h.respondError)
	if !ok {
		return
	}

	summary, err := h.service.GetCategorySummary(r.Context(), subject, startDate, endDate)
	if err != nil {
		slog.Error("get category summary failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

func (h *TransactionHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	startDate, endDate, ok := dateRangeParams(w, r, h.respondError)
	if !ok {
		return
	}

	summary, err := h.service.GetMonthlySummary(r.Context(), subject, startDate, endDate)
	if err != nil {
		slog.Error("get monthly summary failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve monthly summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// dateRangeParams reads optional start_date/end_date query parameters,
// rejecting anything that is not a YYYY-MM-DD day.
func dateRangeParams(w http.ResponseWriter, r *http.Request, respondError func(http.ResponseWriter, int, string)) (string, string, bool) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if startDate != "" && !domain.IsValidDate(startDate) {
		respondError(w, http.StatusBadRequest, "Invalid start date format")
		return "", "", false
	}
	if endDate != "" && !domain.IsValidDate(endDate) {
		respondError(w, http.StatusBadRequest, "Invalid end date format")
		return "", "", false
	}
	return startDate, endDate, true
}
