// zbclient/organization.go
package zbclient

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetOrganization fetches the organization profile from Zoho Books.
func (c *Client) GetOrganization(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "/organization", http.MethodGet, nil)
}
