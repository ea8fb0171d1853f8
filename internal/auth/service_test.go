package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerbeam/zbserver/internal/integration"
)

type fakeStore struct {
	records map[string]*integration.Record
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*integration.Record)}
}

func (s *fakeStore) SaveRecord(userID string, record *integration.Record) error {
	s.saves++
	copied := *record
	s.records[userID] = &copied
	return nil
}

func (s *fakeStore) GetRecord(userID string) (*integration.Record, error) {
	record, ok := s.records[userID]
	if !ok {
		return nil, integration.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *fakeStore) DeleteRecord(userID string) error {
	delete(s.records, userID)
	return nil
}

type fakeBoundary struct {
	refreshCalls int
	refreshToken string
	refreshErr   error
}

func (b *fakeBoundary) TokenRefresh(ctx context.Context, userID string) (string, error) {
	b.refreshCalls++
	return b.refreshToken, b.refreshErr
}

func (b *fakeBoundary) ExchangeCode(ctx context.Context, userID, code string) (string, error) {
	return "org-1", nil
}

func newTestService(store *fakeStore, boundary *fakeBoundary, now time.Time) *Service {
	svc := NewService(OAuthConfig{
		ClientID:    "client-1",
		RedirectURI: "https://app.example.com/callback",
		Scopes:      []string{"ZohoBooks.fullaccess.all"},
		AuthURL:     "https://accounts.zoho.com/oauth/v2/auth",
	}, store, boundary, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func connectedRecord(expiresAt time.Time) *integration.Record {
	connectedAt := expiresAt.Add(-time.Hour)
	return &integration.Record{
		UserID:         "user-1",
		OrganizationID: "org-1",
		AccessToken:    "stored-token",
		RefreshToken:   "refresh-token",
		TokenExpiresAt: expiresAt,
		IsConnected:    true,
		ConnectedAt:    &connectedAt,
	}
}

func TestGetValidAccessTokenFresh(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	require.NoError(t, store.SaveRecord("user-1", connectedRecord(now.Add(30*time.Minute))))
	boundary := &fakeBoundary{refreshToken: "new-token"}
	svc := newTestService(store, boundary, now)

	token, err := svc.GetValidAccessToken(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "stored-token", token)
	require.Equal(t, 0, boundary.refreshCalls)
}

func TestGetValidAccessTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	require.NoError(t, store.SaveRecord("user-1", connectedRecord(now.Add(-time.Minute))))
	boundary := &fakeBoundary{refreshToken: "new-token"}
	svc := newTestService(store, boundary, now)

	token, err := svc.GetValidAccessToken(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "new-token", token, "stale token must never be returned")
	require.Equal(t, 1, boundary.refreshCalls, "expired token must trigger exactly one refresh")

	// The accessor never writes; the remote procedure owns persistence
	require.Equal(t, 1, store.saves)
}

func TestGetValidAccessTokenNotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(store *fakeStore)
	}{
		{
			name:  "no record",
			setup: func(store *fakeStore) {},
		},
		{
			name: "no access token",
			setup: func(store *fakeStore) {
				record := connectedRecord(now.Add(time.Hour))
				record.AccessToken = ""
				_ = store.SaveRecord("user-1", record)
			},
		},
		{
			name: "disconnected",
			setup: func(store *fakeStore) {
				record := connectedRecord(now.Add(time.Hour))
				record.IsConnected = false
				_ = store.SaveRecord("user-1", record)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			tt.setup(store)
			boundary := &fakeBoundary{refreshToken: "new-token"}
			svc := newTestService(store, boundary, now)

			_, err := svc.GetValidAccessToken(context.Background(), "user-1")
			require.ErrorIs(t, err, ErrIntegrationNotFound)
			require.Equal(t, 0, boundary.refreshCalls)
		})
	}
}

func TestRefreshTokenFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	require.NoError(t, store.SaveRecord("user-1", connectedRecord(now.Add(-time.Minute))))

	t.Run("procedure error", func(t *testing.T) {
		boundary := &fakeBoundary{refreshErr: errors.New("upstream down")}
		svc := newTestService(store, boundary, now)

		_, err := svc.GetValidAccessToken(context.Background(), "user-1")
		var refreshErr *RefreshError
		require.ErrorAs(t, err, &refreshErr)
	})

	t.Run("empty token", func(t *testing.T) {
		boundary := &fakeBoundary{refreshToken: ""}
		svc := newTestService(store, boundary, now)

		_, err := svc.GetValidAccessToken(context.Background(), "user-1")
		var refreshErr *RefreshError
		require.ErrorAs(t, err, &refreshErr)
	})
}

func TestDisconnectIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	require.NoError(t, store.SaveRecord("user-1", connectedRecord(now.Add(time.Hour))))
	svc := newTestService(store, &fakeBoundary{}, now)

	require.NoError(t, svc.Disconnect(context.Background(), "user-1"))

	record, err := store.GetRecord("user-1")
	require.NoError(t, err)
	require.False(t, record.IsConnected)
	require.Empty(t, record.AccessToken)
	require.Empty(t, record.RefreshToken)
	require.NotNil(t, record.DisconnectedAt)

	// Disconnecting again succeeds silently and leaves the record disconnected
	require.NoError(t, svc.Disconnect(context.Background(), "user-1"))

	record, err = store.GetRecord("user-1")
	require.NoError(t, err)
	require.False(t, record.IsConnected)
}

func TestDisconnectMissingRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeStore(), &fakeBoundary{}, now)

	require.NoError(t, svc.Disconnect(context.Background(), "user-1"))
}

func TestGetAuthorizationURL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeStore(), &fakeBoundary{}, now)

	authURL := svc.GetAuthorizationURL("state-123")
	require.Contains(t, authURL, "client_id=client-1")
	require.Contains(t, authURL, "state=state-123")
	require.Contains(t, authURL, "scope=ZohoBooks.fullaccess.all")
	require.Contains(t, authURL, "response_type=code")
}
