// functions/client.go
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client invokes the remote serverless functions that hold the live Zoho
// credentials. This process never sees the client secret or performs the
// bearer-token-bearing HTTP call itself.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a new function boundary client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Invoke calls a named remote function with a JSON payload and decodes the
// result envelope. A transport or decode failure is a boundary error,
// distinct from an envelope with success=false.
func (c *Client) Invoke(ctx context.Context, name string, payload interface{}) (*Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+name, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", name, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("function %s unreachable: %w", name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", name, err)
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("function %s returned malformed envelope (status %d): %w", name, resp.StatusCode, err)
	}

	return &envelope, nil
}

// TokenRefresh invokes zoho-token-refresh and returns the new access token.
// The function persists the refreshed token and expiry as a side effect.
func (c *Client) TokenRefresh(ctx context.Context, userID string) (string, error) {
	envelope, err := c.Invoke(ctx, "zoho-token-refresh", map[string]string{"user_id": userID})
	if err != nil {
		return "", err
	}

	if !envelope.Success {
		if envelope.Error != "" {
			return "", fmt.Errorf("token refresh failed: %s", envelope.Error)
		}
		return "", fmt.Errorf("token refresh failed")
	}

	var payload refreshPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return "", fmt.Errorf("failed to parse refresh result: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token refresh returned no token")
	}

	return payload.AccessToken, nil
}

// APICall invokes zoho-api-call, which performs the authenticated request
// against the Zoho Books API inside the trusted boundary.
func (c *Client) APICall(ctx context.Context, userID, organizationID, endpoint, method string, body interface{}) (*Envelope, error) {
	payload := map[string]interface{}{
		"user_id":         userID,
		"organization_id": organizationID,
		"endpoint":        endpoint,
		"method":          method,
	}
	if body != nil {
		payload["body"] = body
	}

	return c.Invoke(ctx, "zoho-api-call", payload)
}

// GetOrganization invokes zoho-get-organization and returns the Zoho Books
// organization id linked to the user.
func (c *Client) GetOrganization(ctx context.Context, userID string) (string, error) {
	envelope, err := c.Invoke(ctx, "zoho-get-organization", map[string]string{"user_id": userID})
	if err != nil {
		return "", err
	}

	if !envelope.Success {
		if envelope.Error != "" {
			return "", fmt.Errorf("organization lookup failed: %s", envelope.Error)
		}
		return "", fmt.Errorf("organization lookup failed")
	}

	var payload organizationPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return "", fmt.Errorf("failed to parse organization result: %w", err)
	}
	if payload.OrganizationID == "" {
		return "", fmt.Errorf("organization lookup returned no id")
	}

	return payload.OrganizationID, nil
}

// ExchangeCode invokes zoho-oauth-exchange to trade an authorization code
// for tokens. The function persists the resulting integration record.
func (c *Client) ExchangeCode(ctx context.Context, userID, code string) (string, error) {
	envelope, err := c.Invoke(ctx, "zoho-oauth-exchange", map[string]string{
		"user_id": userID,
		"code":    code,
	})
	if err != nil {
		return "", err
	}

	if !envelope.Success {
		if envelope.Error != "" {
			return "", fmt.Errorf("code exchange failed: %s", envelope.Error)
		}
		return "", fmt.Errorf("code exchange failed")
	}

	var payload organizationPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return "", fmt.Errorf("failed to parse exchange result: %w", err)
	}

	return payload.OrganizationID, nil
}
