// report/handlers.go
package report

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/httpapi"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Handler provides HTTP handlers for report operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new report handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func reportOptions(r *http.Request) zbclient.ReportOptions {
	q := r.URL.Query()
	return zbclient.ReportOptions{
		FromDate: q.Get("from_date"),
		ToDate:   q.Get("to_date"),
	}
}

// ProfitAndLossHandler returns the P&L summary
func (h *Handler) ProfitAndLossHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ProfitAndLoss(r.Context(), reportOptions(r))
	if err != nil {
		h.logger.Error("profit and loss failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, report)
}

// BalanceSheetHandler returns the balance sheet summary
func (h *Handler) BalanceSheetHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.BalanceSheet(r.Context(), reportOptions(r))
	if err != nil {
		h.logger.Error("balance sheet failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, report)
}

// CashFlowHandler returns the cash flow report
func (h *Handler) CashFlowHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.CashFlow(r.Context(), reportOptions(r))
	if err != nil {
		h.logger.Error("cash flow failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}

// ExpensesHandler returns the expenses report
func (h *Handler) ExpensesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Expenses(r.Context(), reportOptions(r))
	if err != nil {
		h.logger.Error("expense report failed", zap.Error(err))
		httpapi.WriteError(w, err)
		return
	}
	httpapi.WriteRaw(w, http.StatusOK, data)
}
