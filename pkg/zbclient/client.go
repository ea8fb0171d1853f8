// zbclient/client.go
package zbclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/auth"
	"github.com/ledgerbeam/zbserver/internal/functions"
)

// Invoker is the subset of the function boundary client the dispatcher
// depends on.
type Invoker interface {
	APICall(ctx context.Context, userID, organizationID, endpoint, method string, body interface{}) (*functions.Envelope, error)
}

// TokenSource yields a fresh access token for a user, refreshing at most
// once when the stored token has expired.
type TokenSource interface {
	GetValidAccessToken(ctx context.Context, userID string) (string, error)
}

// Client is the main Zoho Books API client. Every resource operation
// funnels through Call.
type Client struct {
	invoker        Invoker
	tokens         TokenSource
	logger         *zap.Logger
	userID         string
	organizationID string
}

// NewClient creates a new Zoho Books API client
func NewClient(invoker Invoker, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		invoker: invoker,
		tokens:  tokens,
		logger:  logger,
	}
}

// WithUser sets the user context for the client
func (c *Client) WithUser(userID string) *Client {
	client := *c
	client.userID = userID
	return &client
}

// WithOrganization sets the Zoho Books organization for the client
func (c *Client) WithOrganization(organizationID string) *Client {
	client := *c
	client.organizationID = organizationID
	return &client
}

// Call dispatches a single logical API call through the function boundary
// and interprets the result envelope. The boundary holds the live
// credentials; ensuring they are fresh (one refresh at most) happens here,
// before dispatch, so the boundary itself never retries.
func (c *Client) Call(ctx context.Context, endpoint, method string, body interface{}) (json.RawMessage, error) {
	// If userID is not set, try to get it from context
	userID := c.userID
	if userID == "" {
		userID = auth.GetUserID(ctx)
		if userID == "" {
			return nil, fmt.Errorf("user ID not provided")
		}
	}

	// If organizationID is not set, try to get it from context
	organizationID := c.organizationID
	if organizationID == "" {
		var err error
		organizationID, err = auth.GetOrganizationID(ctx)
		if err != nil {
			return nil, fmt.Errorf("organization ID not provided")
		}
	}

	// Refresh-then-reissue: make sure the boundary finds a live token
	if _, err := c.tokens.GetValidAccessToken(ctx, userID); err != nil {
		return nil, err
	}

	envelope, err := c.invoker.APICall(ctx, userID, organizationID, endpoint, method, body)
	if err != nil {
		return nil, &DispatchError{Err: err}
	}

	if !envelope.Success {
		apiErr := newAPIError(envelope.Status, envelope.Error)
		c.logger.Debug("zoho api call failed",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.Int("status", envelope.Status),
			zap.String("error", apiErr.Message))
		return nil, apiErr
	}

	return envelope.Data, nil
}

// endpointWithQuery joins a path with encoded query parameters, omitting
// the separator when there are none.
func endpointWithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
