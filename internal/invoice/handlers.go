// invoice/handlers.go
package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/httpapi"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Handler provides HTTP handlers for invoice operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new invoice handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ListHandler returns invoices matching the optional filters
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.List(r.Context(), httpapi.ParseListOptions(r))
	if err != nil {
		h.logger.Error("list invoices failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// GetHandler returns a single invoice
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["id"]

	data, err := h.service.Get(r.Context(), invoiceID)
	if err != nil {
		h.logger.Error("get invoice failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// CreateHandler creates an invoice
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.logger.Error("create invoice failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusCreated, data)
}

// UpdateHandler applies a partial update to an invoice
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["id"]

	var update zbclient.InvoiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.service.Update(r.Context(), invoiceID, update)
	if err != nil {
		h.logger.Error("update invoice failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// DeleteHandler removes an invoice
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), invoiceID); err != nil {
		h.logger.Error("delete invoice failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
