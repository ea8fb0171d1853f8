// zbclient/accounts.go
package zbclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Account is a chart-of-accounts entry.
type Account struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	AccountType string `json:"account_type"`
	IsActive    bool   `json:"is_active"`
}

// chartOfAccountsPayload is the upstream list shape.
type chartOfAccountsPayload struct {
	ChartOfAccounts []Account `json:"chartofaccounts"`
}

// ListChartOfAccounts fetches the full chart of accounts.
func (c *Client) ListChartOfAccounts(ctx context.Context) ([]Account, error) {
	data, err := c.Call(ctx, "/chartofaccounts", http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var payload chartOfAccountsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse chart of accounts: %w", err)
	}

	return payload.ChartOfAccounts, nil
}

// ListExpenseAccounts fetches the chart of accounts filtered to
// expense-type entries, preserving the upstream order.
func (c *Client) ListExpenseAccounts(ctx context.Context) ([]Account, error) {
	accounts, err := c.ListChartOfAccounts(ctx)
	if err != nil {
		return nil, err
	}

	expense := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		if account.AccountType == "expense" {
			expense = append(expense, account)
		}
	}

	return expense, nil
}
