// organization/service.go
package organization

import (
	"context"
	"encoding/json"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Service exposes the organization profile backed by the Zoho Books client.
type Service struct {
	client *zbclient.Client
}

// NewService creates a new organization service
func NewService(client *zbclient.Client) *Service {
	return &Service{client: client}
}

// Get fetches the organization profile.
func (s *Service) Get(ctx context.Context) (json.RawMessage, error) {
	return s.client.GetOrganization(ctx)
}
