// auth/models.go
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrIntegrationNotFound indicates the user has no stored Zoho credentials.
var ErrIntegrationNotFound = errors.New("zoho integration not found")

// RefreshError indicates the remote refresh procedure reported failure or
// returned no usable token.
type RefreshError struct {
	Reason string
	Err    error
}

func (e *RefreshError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token refresh failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token refresh failed: %s", e.Reason)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// OAuthConfig holds the OAuth 2.0 settings needed to build the
// authorization redirect. Token exchange happens inside the function
// boundary, so no client secret appears here.
type OAuthConfig struct {
	ClientID    string
	RedirectURI string
	Scopes      []string
	AuthURL     string
}

// Boundary is the subset of the remote function client the auth service
// depends on.
type Boundary interface {
	TokenRefresh(ctx context.Context, userID string) (string, error)
	ExchangeCode(ctx context.Context, userID, code string) (string, error)
}
