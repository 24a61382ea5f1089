package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finta-app/finta/internal/auth"
)

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("JSON encoding error", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// HandleSync is hit right after the client authenticates with the identity
// provider; it mirrors the latest claims into the users table.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	userID, err := h.userService.SyncFromIdentity(r.Context(), subject)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}
		slog.Error("user sync failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not sync user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]string{
			"user_id": userID,
		},
	})
}

func (h *Handler) HandleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	currentUser, err := h.userService.GetCurrentUser(r.Context(), subject)
	if err != nil {
		slog.Error("get current user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not get current user")
		return
	}

	// Anonymous callers and users without a row both get a null payload.
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   currentUser,
	})
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	var params UpsertParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := h.userService.Upsert(r.Context(), subject, params)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, ErrInvalidEmail) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("user upsert failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not upsert user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]string{
			"user_id": userID,
		},
	})
}

func (h *Handler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())

	var req struct {
		Currency *string `json:"currency"`
		Locale   *string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdatePreferences(r.Context(), subject, req.Currency, req.Locale)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, ErrUserNotFound.Error())
			return
		}
		slog.Error("update preferences failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update preferences")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   updated,
	})
}
