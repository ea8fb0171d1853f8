// auth/handlers.go
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Handler provides HTTP handlers for auth flows
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// generateState creates a secure random state for OAuth
func (h *Handler) generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ConnectHandler initiates the Zoho Books authorization flow
func (h *Handler) ConnectHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := h.generateState()
	if err != nil {
		http.Error(w, "Failed to generate state", http.StatusInternalServerError)
		return
	}

	// Save state in session for verification on callback
	session := GetSession(r)
	session.Values["zb_state"] = state
	session.Values["zb_state_expiry"] = time.Now().Add(10 * time.Minute).Unix()
	if err := session.Save(r, w); err != nil {
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	authURL := h.service.GetAuthorizationURL(state)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// CallbackHandler handles the OAuth callback from Zoho
func (h *Handler) CallbackHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	code := query.Get("code")
	state := query.Get("state")

	if code == "" || state == "" {
		http.Error(w, "Invalid callback parameters", http.StatusBadRequest)
		return
	}

	// Verify state parameter
	session := GetSession(r)
	savedState, ok := session.Values["zb_state"].(string)
	if !ok || savedState != state {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	// Verify state hasn't expired
	expiry, ok := session.Values["zb_state_expiry"].(int64)
	if !ok || time.Now().Unix() > expiry {
		http.Error(w, "State parameter expired", http.StatusBadRequest)
		return
	}

	// Clean up session
	delete(session.Values, "zb_state")
	delete(session.Values, "zb_state_expiry")
	if err := session.Save(r, w); err != nil {
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	// Exchange code for tokens inside the function boundary
	organizationID, err := h.service.ExchangeCode(r.Context(), userID, code)
	if err != nil {
		h.logger.Error("oauth code exchange failed", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to exchange code for token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":          "success",
		"organization_id": organizationID,
	})
}

// DisconnectHandler clears the stored Zoho tokens
func (h *Handler) DisconnectHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Disconnect(r.Context(), userID); err != nil {
		http.Error(w, "Failed to disconnect: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "success",
	})
}

// StatusHandler returns the connection status
func (h *Handler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	record, err := h.service.Status(userID)
	if err != nil || record == nil || !record.IsConnected {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"connected": false,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"connected":       true,
		"organization_id": record.OrganizationID,
		"expires_at":      record.TokenExpiresAt,
	})
}
