package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finta-app/finta/internal/finance/application"
	"github.com/finta-app/finta/internal/finance/domain"
	financeErrors "github.com/finta-app/finta/internal/finance/errors"
)

func TestTransactionList_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.NewFromInt(10), Type: domain.TypeExpense, Date: "2024-01-05"},
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.List(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string               `json:"status"`
		Data   []domain.Transaction `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "tx-1", response.Data[0].ID)
}

func TestTransactionList_ServiceError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{err: errors.New("database down")}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.List(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Failed to retrieve transactions", response["message"])
}

func TestTransactionCreate_Success(t *testing.T) {
	body := `{"amount":"12.50","description":"Lunch","category":"Dining","type":"expense","date":"2024-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.NotNil(t, mockService.createdTransaction)
	assert.True(t, mockService.createdTransaction.Amount.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, domain.TypeExpense, mockService.createdTransaction.Type)
}

func TestTransactionCreate_Unauthorized(t *testing.T) {
	body := `{"amount":"12.50","type":"expense","date":"2024-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{err: financeErrors.ErrUnauthorized}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Unauthorized", response["message"])
}

func TestTransactionCreate_ValidationError(t *testing.T) {
	body := `{"amount":"0","type":"expense","date":"2024-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{err: financeErrors.NewValidationError("Amount must be greater than zero")}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTransactionCreate_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Nil(t, mockService.createdTransaction)
}

func TestTransactionUpdate_NotFound(t *testing.T) {
	body := `{"amount":"12.50","type":"expense","date":"2024-01-10"}`
	req := httptest.NewRequest(http.MethodPut, "/api/transactions/tx-1", strings.NewReader(body))
	req.SetPathValue("id", "tx-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{err: financeErrors.ErrNotFound}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Update(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Not found", response["message"])
}

func TestTransactionDelete_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/tx-1", nil)
	req.SetPathValue("id", "tx-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.Delete(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "tx-1", mockService.deletedID)
}

func TestTransactionGetStats_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/stats", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		stats: application.Stats{
			TotalBalance:    decimal.NewFromInt(50),
			MonthlyIncome:   decimal.NewFromInt(100),
			MonthlySpending: decimal.NewFromInt(30),
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetStats(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data application.Stats `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Data.TotalBalance.Equal(decimal.NewFromInt(50)))
	assert.True(t, response.Data.MonthlyIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Data.MonthlySpending.Equal(decimal.NewFromInt(30)))
}

func TestTransactionGetCategorySummary_InvalidDateParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary/categories?start_date=10.01.2024", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetCategorySummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid start date format", response["message"])
}

func TestTransactionGetMonthlySummary_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary/monthly?start_date=2024-01-01&end_date=2024-02-29", nil)
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		monthTotals: []application.MonthTotal{
			{Month: "2024-01", Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(30)},
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetMonthlySummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data []application.MonthTotal `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "2024-01", response.Data[0].Month)
}
