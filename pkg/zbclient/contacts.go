// zbclient/contacts.go
package zbclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ContactType discriminates customers from vendors within the shared
// contacts collection.
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeVendor   ContactType = "vendor"
)

// ContactUpdate is a typed partial update for a contact. Only non-nil
// fields are sent upstream.
type ContactUpdate struct {
	ContactName  *string `json:"contact_name,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	PaymentTerms *string `json:"payment_terms_label,omitempty"`
}

// Validate rejects updates that carry nothing to change.
func (u ContactUpdate) Validate() error {
	if u.ContactName == nil && u.CompanyName == nil && u.Email == nil &&
		u.Phone == nil && u.Notes == nil && u.PaymentTerms == nil {
		return errors.New("contact update contains no fields")
	}
	return nil
}

// ListContacts fetches contacts of one kind. Customers and vendors share a
// single upstream collection; the contact_type filter is the only
// discriminator.
func (c *Client) ListContacts(ctx context.Context, contactType ContactType, opts ListOptions) (json.RawMessage, error) {
	q := opts.query()
	q.Set("contact_type", string(contactType))
	return c.Call(ctx, endpointWithQuery("/contacts", q), http.MethodGet, nil)
}

// ListCustomers fetches customer contacts.
func (c *Client) ListCustomers(ctx context.Context, opts ListOptions) (json.RawMessage, error) {
	return c.ListContacts(ctx, ContactTypeCustomer, opts)
}

// ListVendors fetches vendor contacts.
func (c *Client) ListVendors(ctx context.Context, opts ListOptions) (json.RawMessage, error) {
	return c.ListContacts(ctx, ContactTypeVendor, opts)
}

// GetContact fetches a single contact by id.
func (c *Client) GetContact(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.Call(ctx, "/contacts/"+contactID, http.MethodGet, nil)
}

// createContact stamps the discriminator into the outbound body even when
// the caller's payload omits it.
func (c *Client) createContact(ctx context.Context, contactType ContactType, payload map[string]interface{}) (json.RawMessage, error) {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["contact_type"] = string(contactType)
	return c.Call(ctx, "/contacts", http.MethodPost, body)
}

// CreateCustomer creates a customer contact.
func (c *Client) CreateCustomer(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.createContact(ctx, ContactTypeCustomer, payload)
}

// CreateVendor creates a vendor contact.
func (c *Client) CreateVendor(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.createContact(ctx, ContactTypeVendor, payload)
}

// UpdateContact applies a typed partial update to a contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, update ContactUpdate) (json.RawMessage, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return c.Call(ctx, "/contacts/"+contactID, http.MethodPut, update)
}

// DeleteContact deletes a contact by id.
func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	_, err := c.Call(ctx, "/contacts/"+contactID, http.MethodDelete, nil)
	return err
}
