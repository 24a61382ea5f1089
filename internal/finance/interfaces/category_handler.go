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
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, subject *auth.Subject) ([]domain.Category, error)
	CreateCategory(ctx context.Context, subject *auth.Subject, category *domain.Category) error
	DeleteCategory(ctx context.Context, subject *auth.Subject, id string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	categories, err := h.service.ListCategories(r.Context(), subject)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	var req struct {
		Name  string  `json:"name"`
		Icon  *string `json:"icon"`
		Color *string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := domain.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}
	if err := h.service.CreateCategory(r.Context(), subject, &category); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create category failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	id := r.PathValue("id")

	if err := h.service.DeleteCategory(r.Context(), subject, id); err != nil {
		if errors.Is(err, financeErrors.ErrUnauthorized) {
			h.respondError(w, http.StatusUnauthorized, financeErrors.ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, financeErrors.ErrNotFound.Error())
			return
		}
		slog.Error("delete category failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully deleted.",
	})
}
