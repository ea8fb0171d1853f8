// contact/service.go
package contact

import (
	"context"
	"encoding/json"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Service exposes customer and vendor operations. Both kinds live in one
// upstream contacts collection, discriminated by contact_type.
type Service struct {
	client *zbclient.Client
}

// NewService creates a new contact service
func NewService(client *zbclient.Client) *Service {
	return &Service{client: client}
}

// ListCustomers fetches customer contacts.
func (s *Service) ListCustomers(ctx context.Context, opts zbclient.ListOptions) (json.RawMessage, error) {
	return s.client.ListCustomers(ctx, opts)
}

// ListVendors fetches vendor contacts.
func (s *Service) ListVendors(ctx context.Context, opts zbclient.ListOptions) (json.RawMessage, error) {
	return s.client.ListVendors(ctx, opts)
}

// Get fetches a single contact.
func (s *Service) Get(ctx context.Context, contactID string) (json.RawMessage, error) {
	return s.client.GetContact(ctx, contactID)
}

// CreateCustomer creates a customer contact.
func (s *Service) CreateCustomer(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return s.client.CreateCustomer(ctx, payload)
}

// CreateVendor creates a vendor contact.
func (s *Service) CreateVendor(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return s.client.CreateVendor(ctx, payload)
}

// Update applies a partial update to a contact.
func (s *Service) Update(ctx context.Context, contactID string, update zbclient.ContactUpdate) (json.RawMessage, error) {
	return s.client.UpdateContact(ctx, contactID, update)
}

// Delete removes a contact.
func (s *Service) Delete(ctx context.Context, contactID string) error {
	return s.client.DeleteContact(ctx, contactID)
}
