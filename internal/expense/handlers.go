// expense/handlers.go
package expense

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/httpapi"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Handler provides HTTP handlers for expense operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new expense handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ListHandler returns normalized expenses
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context(), httpapi.ParseListOptions(r))
	if err != nil {
		h.logger.Error("list expenses failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]interface{}{"expenses": expenses})
}

// GetHandler returns a single expense
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	data, err := h.service.Get(r.Context(), expenseID)
	if err != nil {
		h.logger.Error("get expense failed", zap.String("expense_id", expenseID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// CreateHandler creates an expense
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload zbclient.ExpenseCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.logger.Error("create expense failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusCreated, data)
}

// UpdateHandler applies a partial update to an expense
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	var update zbclient.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.service.Update(r.Context(), expenseID, update)
	if err != nil {
		h.logger.Error("update expense failed", zap.String("expense_id", expenseID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// DeleteHandler removes an expense
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), expenseID); err != nil {
		h.logger.Error("delete expense failed", zap.String("expense_id", expenseID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListAccountsHandler returns the chart of accounts
func (h *Handler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		h.logger.Error("list chart of accounts failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]interface{}{"chartofaccounts": accounts})
}
