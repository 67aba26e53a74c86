package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrishare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionHandler_Request(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("RequestTransaction", mock.Anything, int32(5), int32(2), domain.TransactionTypeRent, (*float64)(nil)).
			Return(&domain.Transaction{ID: 10, ResourceID: 5, UserID: 2, Status: domain.TransactionStatusPending}, nil)

		body := `{"resource_id":5,"user_id":2,"transaction_type":"rent"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var tx domain.Transaction
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&tx))
		assert.Equal(t, domain.TransactionStatusPending, tx.Status)
	})

	t.Run("ResourceUnavailable", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("RequestTransaction", mock.Anything, int32(5), int32(2), domain.TransactionTypeRent, (*float64)(nil)).
			Return(nil, domain.ErrResourceUnavailable)

		body := `{"resource_id":5,"user_id":2,"transaction_type":"rent"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("SelfTransaction", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("RequestTransaction", mock.Anything, int32(5), int32(1), domain.TransactionTypeRent, (*float64)(nil)).
			Return(nil, domain.ErrSelfTransaction)

		body := `{"resource_id":5,"user_id":1,"transaction_type":"rent"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("RequestTransaction", mock.Anything, int32(5), int32(2), domain.TransactionType("lease"), (*float64)(nil)).
			Return(nil, domain.ErrInvalidTransactionType)

		body := `{"resource_id":5,"user_id":2,"transaction_type":"lease"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionHandler_Lifecycle(t *testing.T) {
	t.Run("Activate", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("Activate", mock.Anything, int32(10)).
			Return(&domain.Transaction{ID: 10, Status: domain.TransactionStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/10/activate", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ActivateTerminalConflict", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("Activate", mock.Anything, int32(10)).Return(nil, domain.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/10/activate", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Cancel", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("Cancel", mock.Anything, int32(10)).
			Return(&domain.Transaction{ID: 10, Status: domain.TransactionStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/10/cancel", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CompleteWithRating", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		rating := int32(4)
		transactions.On("Complete", mock.Anything, int32(10), mock.Anything, 150.0, &rating, "reliable machine").
			Return(&domain.Transaction{ID: 10, Status: domain.TransactionStatusCompleted, Rating: &rating}, nil)

		body := `{"amount":150,"rating":4,"review":"reliable machine"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/10/complete", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CompleteInvalidRating", func(t *testing.T) {
		_, _, transactions, router := newTestRouter()

		transactions.On("Complete", mock.Anything, int32(10), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidRating)

		body := `{"amount":150,"rating":6}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/10/complete", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionHandler_ListByUser(t *testing.T) {
	_, _, transactions, router := newTestRouter()

	transactions.On("ListByUser", mock.Anything, int32(2), "completed", int32(1), int32(20)).
		Return([]domain.Transaction{{ID: 10}}, int32(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/2/transactions?status=completed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionHandler_ListByResource(t *testing.T) {
	_, _, transactions, router := newTestRouter()

	transactions.On("ListByResource", mock.Anything, int32(5)).
		Return([]domain.Transaction{{ID: 10}, {ID: 11}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/5/transactions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var txs []domain.Transaction
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&txs))
	assert.Len(t, txs, 2)
}
