package functions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvokeDecodesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/zoho-api-call", r.URL.Path)
		require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "user-1", payload["user_id"])
		require.Equal(t, "org-1", payload["organization_id"])
		require.Equal(t, "/invoices", payload["endpoint"])
		require.Equal(t, "GET", payload["method"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"invoices": []interface{}{}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key")

	envelope, err := client.APICall(context.Background(), "user-1", "org-1", "/invoices", "GET", nil)
	require.NoError(t, err)
	require.True(t, envelope.Success)
	require.JSONEq(t, `{"invoices":[]}`, string(envelope.Data))
}

func TestInvokeMalformedEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Invoke(context.Background(), "zoho-api-call", map[string]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed envelope")
}

func TestTokenRefresh(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/zoho-token-refresh", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"accessToken": "fresh-token"},
			})
		}))
		defer server.Close()

		token, err := NewClient(server.URL, "").TokenRefresh(context.Background(), "user-1")
		require.NoError(t, err)
		require.Equal(t, "fresh-token", token)
	})

	t.Run("reported failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "refresh token revoked",
			})
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "").TokenRefresh(context.Background(), "user-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "refresh token revoked")
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{},
			})
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "").TokenRefresh(context.Background(), "user-1")
		require.Error(t, err)
	})
}

func TestGetOrganization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/zoho-get-organization", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"organizationId": "org-42"},
		})
	}))
	defer server.Close()

	organizationID, err := NewClient(server.URL, "").GetOrganization(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "org-42", organizationID)
}
