// auth/service.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/integration"
)

// Service owns the Zoho credential lifecycle on this side of the function
// boundary: reading the integration record, delegating refresh, and the
// single locally-owned write, disconnect.
type Service struct {
	config   OAuthConfig
	store    integration.Store
	boundary Boundary
	logger   *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a new auth service
func NewService(config OAuthConfig, store integration.Store, boundary Boundary, logger *zap.Logger) *Service {
	return &Service{
		config:   config,
		store:    store,
		boundary: boundary,
		logger:   logger,
		now:      time.Now,
	}
}

// GetAuthorizationURL generates the Zoho Books authorization URL
func (s *Service) GetAuthorizationURL(state string) string {
	u, _ := url.Parse(s.config.AuthURL)
	q := u.Query()

	q.Set("client_id", s.config.ClientID)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(s.config.Scopes, " "))
	q.Set("redirect_uri", s.config.RedirectURI)
	q.Set("access_type", "offline")
	q.Set("state", state)

	u.RawQuery = q.Encode()
	return u.String()
}

// GetValidAccessToken returns a usable access token for the user,
// delegating to the remote refresh procedure when the stored token has
// expired. It never writes the integration record; the refresh procedure
// persists the new token and expiry out of band.
func (s *Service) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	record, err := s.store.GetRecord(userID)
	if err != nil {
		if errors.Is(err, integration.ErrRecordNotFound) {
			return "", ErrIntegrationNotFound
		}
		return "", fmt.Errorf("failed to read integration record: %w", err)
	}

	if !record.IsConnected || record.AccessToken == "" {
		return "", ErrIntegrationNotFound
	}

	if record.Expired(s.now()) {
		return s.RefreshToken(ctx, userID)
	}

	return record.AccessToken, nil
}

// RefreshToken invokes the remote refresh procedure and returns the new
// access token. Persisting the refreshed token is the procedure's job.
func (s *Service) RefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := s.boundary.TokenRefresh(ctx, userID)
	if err != nil {
		return "", &RefreshError{Reason: "refresh procedure failed", Err: err}
	}
	if token == "" {
		return "", &RefreshError{Reason: "refresh procedure returned no token"}
	}

	s.logger.Debug("access token refreshed", zap.String("user_id", userID))
	return token, nil
}

// ExchangeCode trades an OAuth authorization code for tokens via the
// function boundary and returns the linked organization id.
func (s *Service) ExchangeCode(ctx context.Context, userID, code string) (string, error) {
	return s.boundary.ExchangeCode(ctx, userID, code)
}

// Disconnect clears the stored tokens and marks the integration as
// disconnected. Disconnecting an already-disconnected (or never-connected)
// account succeeds silently.
func (s *Service) Disconnect(ctx context.Context, userID string) error {
	record, err := s.store.GetRecord(userID)
	if err != nil {
		if errors.Is(err, integration.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read integration record: %w", err)
	}

	now := s.now()
	record.AccessToken = ""
	record.RefreshToken = ""
	record.IsConnected = false
	record.DisconnectedAt = &now

	if err := s.store.SaveRecord(userID, record); err != nil {
		return fmt.Errorf("failed to save disconnected record: %w", err)
	}

	s.logger.Info("zoho integration disconnected", zap.String("user_id", userID))
	return nil
}

// Status returns the stored integration record, or nil when none exists.
func (s *Service) Status(userID string) (*integration.Record, error) {
	record, err := s.store.GetRecord(userID)
	if err != nil {
		if errors.Is(err, integration.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read integration record: %w", err)
	}
	return record, nil
}
