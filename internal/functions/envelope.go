// functions/envelope.go
package functions

import (
	"encoding/json"
)

// Envelope is the uniform result shape returned by every remote function.
// success=true implies data is present and error is absent; success=false
// implies error is present.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  int             `json:"status,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// refreshPayload is the data shape of a zoho-token-refresh result.
type refreshPayload struct {
	AccessToken string `json:"accessToken"`
}

// organizationPayload is the data shape of a zoho-get-organization result.
type organizationPayload struct {
	OrganizationID string `json:"organizationId"`
}
