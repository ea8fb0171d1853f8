// zbclient/invoices.go
package zbclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// InvoiceUpdate is a typed partial update for an invoice. Only non-nil
// fields are sent upstream.
type InvoiceUpdate struct {
	CustomerID      *string                  `json:"customer_id,omitempty"`
	ReferenceNumber *string                  `json:"reference_number,omitempty"`
	Date            *string                  `json:"date,omitempty"`
	DueDate         *string                  `json:"due_date,omitempty"`
	Notes           *string                  `json:"notes,omitempty"`
	Terms           *string                  `json:"terms,omitempty"`
	LineItems       []map[string]interface{} `json:"line_items,omitempty"`
}

// Validate rejects updates that carry nothing to change or malformed line
// items before they are dispatched.
func (u InvoiceUpdate) Validate() error {
	if u.CustomerID == nil && u.ReferenceNumber == nil && u.Date == nil &&
		u.DueDate == nil && u.Notes == nil && u.Terms == nil && len(u.LineItems) == 0 {
		return errors.New("invoice update contains no fields")
	}
	for i, item := range u.LineItems {
		if rate, ok := item["rate"].(float64); ok && rate < 0 {
			return fmt.Errorf("line item %d has a negative rate", i)
		}
		if qty, ok := item["quantity"].(float64); ok && qty < 0 {
			return fmt.Errorf("line item %d has a negative quantity", i)
		}
	}
	return nil
}

// ListInvoices fetches invoices, passing optional filters through.
func (c *Client) ListInvoices(ctx context.Context, opts ListOptions) (json.RawMessage, error) {
	return c.Call(ctx, endpointWithQuery("/invoices", opts.query()), http.MethodGet, nil)
}

// GetInvoice fetches a single invoice by id.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Call(ctx, "/invoices/"+invoiceID, http.MethodGet, nil)
}

// CreateInvoice creates an invoice from the caller's payload.
func (c *Client) CreateInvoice(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.Call(ctx, "/invoices", http.MethodPost, payload)
}

// UpdateInvoice applies a typed partial update to an invoice.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID string, update InvoiceUpdate) (json.RawMessage, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return c.Call(ctx, "/invoices/"+invoiceID, http.MethodPut, update)
}

// DeleteInvoice deletes an invoice by id.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID string) error {
	_, err := c.Call(ctx, "/invoices/"+invoiceID, http.MethodDelete, nil)
	return err
}
