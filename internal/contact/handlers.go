// contact/handlers.go
package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/httpapi"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Handler provides HTTP handlers for customer and vendor operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new contact handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ListCustomersHandler returns customer contacts
func (h *Handler) ListCustomersHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ListCustomers(r.Context(), httpapi.ParseListOptions(r))
	if err != nil {
		h.logger.Error("list customers failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// ListVendorsHandler returns vendor contacts
func (h *Handler) ListVendorsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ListVendors(r.Context(), httpapi.ParseListOptions(r))
	if err != nil {
		h.logger.Error("list vendors failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// GetHandler returns a single contact
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	data, err := h.service.Get(r.Context(), contactID)
	if err != nil {
		h.logger.Error("get contact failed", zap.String("contact_id", contactID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// CreateCustomerHandler creates a customer contact
func (h *Handler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.service.CreateCustomer, "create customer failed")
}

// CreateVendorHandler creates a vendor contact
func (h *Handler) CreateVendorHandler(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.service.CreateVendor, "create vendor failed")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, fn func(context.Context, map[string]interface{}) (json.RawMessage, error), logMsg string) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := fn(r.Context(), payload)
	if err != nil {
		h.logger.Error(logMsg, zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusCreated, data)
}

// UpdateHandler applies a partial update to a contact
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	var update zbclient.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.service.Update(r.Context(), contactID, update)
	if err != nil {
		h.logger.Error("update contact failed", zap.String("contact_id", contactID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// DeleteHandler removes a contact
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), contactID); err != nil {
		h.logger.Error("delete contact failed", zap.String("contact_id", contactID), zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
