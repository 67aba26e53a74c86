package http

import (
	"net/http"

	"agrishare-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers under /api/v1 with the shared middleware
// chain.
func NewRouter(users service.UserService, resources service.ResourceService, transactions service.TransactionService) *mux.Router {
	userHandler := NewUserHandler(users)
	resourceHandler := NewResourceHandler(resources)
	transactionHandler := NewTransactionHandler(transactions)

	r := mux.NewRouter()
	r.Use(RequestID, Logging, Recovery)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Owner directory
	api.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/users/lookup", userHandler.GetByIdentity).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/resources", resourceHandler.ListByOwner).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/transactions", transactionHandler.ListByUser).Methods(http.MethodGet)

	// Resource catalog
	api.HandleFunc("/resources", resourceHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/resources", resourceHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", resourceHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", resourceHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/resources/{id}", resourceHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/resources/{id}/transactions", transactionHandler.ListByResource).Methods(http.MethodGet)

	// Transaction ledger
	api.HandleFunc("/transactions", transactionHandler.Request).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", transactionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}/activate", transactionHandler.Activate).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/cancel", transactionHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/complete", transactionHandler.Complete).Methods(http.MethodPost)

	return r
}
