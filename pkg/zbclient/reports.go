// zbclient/reports.go
package zbclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// ReportOptions bound a report to a date range. Absent bounds are omitted
// from the query string.
type ReportOptions struct {
	FromDate string
	ToDate   string
}

func (o ReportOptions) query() url.Values {
	q := url.Values{}
	if o.FromDate != "" {
		q.Set("from_date", o.FromDate)
	}
	if o.ToDate != "" {
		q.Set("to_date", o.ToDate)
	}
	return q
}

// ProfitAndLossReport is the summarized P&L shape.
type ProfitAndLossReport struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

// BalanceSheetReport is the summarized balance sheet shape.
type BalanceSheetReport struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	TotalEquity      float64 `json:"total_equity"`
}

// GetProfitAndLoss fetches the P&L report. A failed fetch degrades to a
// zero-valued report instead of propagating, so dashboards render.
func (c *Client) GetProfitAndLoss(ctx context.Context, opts ReportOptions) (ProfitAndLossReport, error) {
	var report ProfitAndLossReport

	data, err := c.Call(ctx, endpointWithQuery("/reports/profitandloss", opts.query()), http.MethodGet, nil)
	if err != nil {
		c.logger.Warn("profit and loss fetch failed, returning zero report", zap.Error(err))
		return report, nil
	}

	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("profit and loss parse failed, returning zero report", zap.Error(err))
		return ProfitAndLossReport{}, nil
	}

	return report, nil
}

// GetBalanceSheet fetches the balance sheet. A failed fetch degrades to a
// zero-valued report instead of propagating.
func (c *Client) GetBalanceSheet(ctx context.Context, opts ReportOptions) (BalanceSheetReport, error) {
	var report BalanceSheetReport

	data, err := c.Call(ctx, endpointWithQuery("/reports/balancesheet", opts.query()), http.MethodGet, nil)
	if err != nil {
		c.logger.Warn("balance sheet fetch failed, returning zero report", zap.Error(err))
		return report, nil
	}

	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("balance sheet parse failed, returning zero report", zap.Error(err))
		return BalanceSheetReport{}, nil
	}

	return report, nil
}

// GetCashFlow fetches the cash flow report. Failures propagate.
func (c *Client) GetCashFlow(ctx context.Context, opts ReportOptions) (json.RawMessage, error) {
	data, err := c.Call(ctx, endpointWithQuery("/reports/cashflow", opts.query()), http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf("cash flow report: %w", err)
	}
	return data, nil
}

// GetExpenseReport fetches the expenses report. Failures propagate.
func (c *Client) GetExpenseReport(ctx context.Context, opts ReportOptions) (json.RawMessage, error) {
	data, err := c.Call(ctx, endpointWithQuery("/reports/expenses", opts.query()), http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf("expense report: %w", err)
	}
	return data, nil
}
