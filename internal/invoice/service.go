// invoice/service.go
package invoice

import (
	"context"
	"encoding/json"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Service exposes invoice operations backed by the Zoho Books client.
type Service struct {
	client *zbclient.Client
}

// NewService creates a new invoice service
func NewService(client *zbclient.Client) *Service {
	return &Service{client: client}
}

// List fetches invoices with optional filters.
func (s *Service) List(ctx context.Context, opts zbclient.ListOptions) (json.RawMessage, error) {
	return s.client.ListInvoices(ctx, opts)
}

// Get fetches a single invoice.
func (s *Service) Get(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return s.client.GetInvoice(ctx, invoiceID)
}

// Create creates an invoice from the caller's payload.
func (s *Service) Create(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return s.client.CreateInvoice(ctx, payload)
}

// Update applies a partial update to an invoice.
func (s *Service) Update(ctx context.Context, invoiceID string, update zbclient.InvoiceUpdate) (json.RawMessage, error) {
	return s.client.UpdateInvoice(ctx, invoiceID, update)
}

// Delete removes an invoice.
func (s *Service) Delete(ctx context.Context, invoiceID string) error {
	return s.client.DeleteInvoice(ctx, invoiceID)
}
