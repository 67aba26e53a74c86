package http

import (
	"encoding/json"
	"net/http"
	"time"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/service"

	"github.com/gorilla/mux"
)

type TransactionHandler struct {
	transactions service.TransactionService
}

func NewTransactionHandler(transactions service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type requestTransactionRequest struct {
	ResourceID int32    `json:"resource_id"`
	UserID     int32    `json:"user_id"`
	Type       string   `json:"transaction_type"`
	Amount     *float64 `json:"amount"`
}

func (h *TransactionHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req requestTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	t, err := h.transactions.RequestTransaction(r.Context(), req.ResourceID, req.UserID, domain.TransactionType(req.Type), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.transactions.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TransactionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.transactions.Activate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TransactionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.transactions.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

type completeTransactionRequest struct {
	EndDate time.Time `json:"end_date"`
	Amount  float64   `json:"amount"`
	Rating  *int32    `json:"rating"`
	Review  string    `json:"review"`
}

func (h *TransactionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}
	if req.EndDate.IsZero() {
		req.EndDate = time.Now().UTC()
	}

	t, err := h.transactions.Complete(r.Context(), id, req.EndDate, req.Amount, req.Rating, req.Review)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TransactionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	txs, total, err := h.transactions.ListByUser(r.Context(), userID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: txs, Total: total, Page: page})
}

func (h *TransactionHandler) ListByResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := pathID(mux.Vars(r), "id")
	if err != nil {
		writeError(w, err)
		return
	}

	txs, err := h.transactions.ListByResource(r.Context(), resourceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}
