// report/service.go
package report

import (
	"context"
	"encoding/json"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Service exposes report operations backed by the Zoho Books client.
type Service struct {
	client *zbclient.Client
}

// NewService creates a new report service
func NewService(client *zbclient.Client) *Service {
	return &Service{client: client}
}

// ProfitAndLoss fetches the P&L summary. Fetch failures degrade to a
// zero-valued report.
func (s *Service) ProfitAndLoss(ctx context.Context, opts zbclient.ReportOptions) (zbclient.ProfitAndLossReport, error) {
	return s.client.GetProfitAndLoss(ctx, opts)
}

// BalanceSheet fetches the balance sheet summary. Fetch failures degrade
// to a zero-valued report.
func (s *Service) BalanceSheet(ctx context.Context, opts zbclient.ReportOptions) (zbclient.BalanceSheetReport, error) {
	return s.client.GetBalanceSheet(ctx, opts)
}

// CashFlow fetches the cash flow report.
func (s *Service) CashFlow(ctx context.Context, opts zbclient.ReportOptions) (json.RawMessage, error) {
	return s.client.GetCashFlow(ctx, opts)
}

// Expenses fetches the expenses report.
func (s *Service) Expenses(ctx context.Context, opts zbclient.ReportOptions) (json.RawMessage, error) {
	return s.client.GetExpenseReport(ctx, opts)
}
