// integration/models.go
package integration

import (
	"time"
)

// Record is the persisted Zoho Books credential record for a user.
// The remote function boundary owns token issuance and refresh; this
// process writes the record only on disconnect.
type Record struct {
	UserID         string     `json:"user_id"`
	OrganizationID string     `json:"organization_id"`
	AccessToken    string     `json:"access_token"`
	RefreshToken   string     `json:"refresh_token"`
	TokenExpiresAt time.Time  `json:"token_expires_at"`
	IsConnected    bool       `json:"is_connected"`
	ConnectedAt    *time.Time `json:"connected_at,omitempty"`
	DisconnectedAt *time.Time `json:"disconnected_at,omitempty"`
}

// Expired reports whether the stored access token has passed its expiry.
func (r *Record) Expired(now time.Time) bool {
	return !r.TokenExpiresAt.After(now)
}

// Store is the persistence interface for integration records, keyed by user.
type Store interface {
	SaveRecord(userID string, record *Record) error
	GetRecord(userID string) (*Record, error)
	DeleteRecord(userID string) error
}
