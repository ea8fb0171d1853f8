// zbclient/expenses.go
package zbclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ExpenseCreate is the caller-facing expense creation payload. The caller
// supplies the amount as Total; the upstream key is "amount".
type ExpenseCreate struct {
	AccountID       string  `json:"account_id"`
	Total           float64 `json:"total"`
	Date            string  `json:"date"`
	VendorName      string  `json:"vendor_name,omitempty"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Description     string  `json:"description,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	CustomerID      string  `json:"customer_id,omitempty"`
}

// Validate rejects malformed expense payloads before dispatch.
func (e ExpenseCreate) Validate() error {
	if e.Total <= 0 {
		return errors.New("expense total must be positive")
	}
	if e.Date == "" {
		return errors.New("expense date is required")
	}
	return nil
}

// ExpenseUpdate is a typed partial update for an expense. Only non-nil
// fields are sent upstream; Total is renamed to "amount" on the wire.
type ExpenseUpdate struct {
	AccountID       *string  `json:"account_id,omitempty"`
	Total           *float64 `json:"amount,omitempty"`
	Date            *string  `json:"date,omitempty"`
	VendorName      *string  `json:"vendor_name,omitempty"`
	ReferenceNumber *string  `json:"reference_number,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// Validate rejects updates that carry nothing to change or a non-positive
// amount.
func (u ExpenseUpdate) Validate() error {
	if u.AccountID == nil && u.Total == nil && u.Date == nil && u.VendorName == nil &&
		u.ReferenceNumber == nil && u.Description == nil && u.Status == nil {
		return errors.New("expense update contains no fields")
	}
	if u.Total != nil && *u.Total <= 0 {
		return errors.New("expense amount must be positive")
	}
	return nil
}

// expenseListPayload is the upstream list shape; records are kept loose
// because their field spellings vary.
type expenseListPayload struct {
	Expenses []map[string]interface{} `json:"expenses"`
}

// ListExpenses fetches expenses and normalizes each record into the
// canonical shape.
func (c *Client) ListExpenses(ctx context.Context, opts ListOptions) ([]Expense, error) {
	data, err := c.Call(ctx, endpointWithQuery("/expenses", opts.query()), http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var payload expenseListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// Some responses carry the array at the top level
		var flat []map[string]interface{}
		if err2 := json.Unmarshal(data, &flat); err2 != nil {
			return nil, fmt.Errorf("failed to parse expense list: %w", err)
		}
		return NormalizeExpenses(flat), nil
	}

	return NormalizeExpenses(payload.Expenses), nil
}

// GetExpense fetches a single expense by id.
func (c *Client) GetExpense(ctx context.Context, expenseID string) (json.RawMessage, error) {
	return c.Call(ctx, "/expenses/"+expenseID, http.MethodGet, nil)
}

// CreateExpense creates an expense. When no account is specified it picks
// the first expense-type account from the chart of accounts, failing with
// ErrNoExpenseAccount if none exist.
func (c *Client) CreateExpense(ctx context.Context, payload ExpenseCreate) (json.RawMessage, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	accountID := payload.AccountID
	if accountID == "" {
		accounts, err := c.ListExpenseAccounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default expense account: %w", err)
		}
		if len(accounts) == 0 {
			return nil, ErrNoExpenseAccount
		}
		accountID = accounts[0].AccountID
	}

	body := map[string]interface{}{
		"account_id": accountID,
		"amount":     payload.Total,
		"date":       payload.Date,
	}
	if payload.VendorName != "" {
		body["vendor_name"] = payload.VendorName
	}
	if payload.ReferenceNumber != "" {
		body["reference_number"] = payload.ReferenceNumber
	}
	if payload.Description != "" {
		body["description"] = payload.Description
	}
	if payload.PaymentMethod != "" {
		body["payment_method"] = payload.PaymentMethod
	}
	if payload.CustomerID != "" {
		body["customer_id"] = payload.CustomerID
	}

	return c.Call(ctx, "/expenses", http.MethodPost, body)
}

// UpdateExpense applies a typed partial update to an expense.
func (c *Client) UpdateExpense(ctx context.Context, expenseID string, update ExpenseUpdate) (json.RawMessage, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return c.Call(ctx, "/expenses/"+expenseID, http.MethodPut, update)
}

// DeleteExpense deletes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, expenseID string) error {
	_, err := c.Call(ctx, "/expenses/"+expenseID, http.MethodDelete, nil)
	return err
}
