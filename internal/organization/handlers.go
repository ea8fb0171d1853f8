// organization/handlers.go
package organization

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/httpapi"
)

// Handler provides HTTP handlers for organization operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new organization handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// GetHandler returns the organization profile
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("get organization failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}
