package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type BudgetServiceInterface interface {
	ListBudgets(ctx context.Context, subject *auth.Subject) ([]domain.BudgetWithSpent, error)
	CreateBudget(ctx context.Context, subject *auth.Subject, budget *domain.Budget) error
	UpdateBudget(ctx context.Context, subject *auth.Subject, id string, fields domain.Budget) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, subject *auth.Subject, id string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *BudgetHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type budgetRequest struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Period   string          `json:"period"`
}

func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	budgets, err := h.service.ListBudgets(r.Context(), subject)
	if err != nil {
		slog.Error("list budgets failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve budgets")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budgets,
	})
}

func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget := domain.Budget{
		Category: req.Category,
		Limit:    req.Limit,
		Period:   req.Period,
	}
	if err := h.service.CreateBudget(r.Context(), subject, &budget); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create budget failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create budget")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    budget,
	})
}

func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := domain.Budget{
		Category: req.Category,
		Limit:    req.Limit,
		Period:   req.Period,
	}
	updated, err := h.service.UpdateBudget(r.Context(), subject, id, fields)
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
		slog.Error("update budget failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully updated.",
		"data":    updated,
	})
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.service.DeleteBudget(r.Context(), subject, id); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, financeErrors.ErrNotFound.Error())
			return
		}
		slog.Error("delete budget failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully deleted.",
	})
}
