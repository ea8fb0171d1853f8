// auth/middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys
type contextKey string

// Context keys
const (
	UserIDKey         contextKey = "user_id"
	OrganizationIDKey contextKey = "organization_id"
	RequestIDKey      contextKey = "request_id"
)

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetOrganizationID extracts the Zoho organization ID from context
func GetOrganizationID(ctx context.Context) (string, error) {
	organizationID, ok := ctx.Value(OrganizationIDKey).(string)
	if !ok || organizationID == "" {
		return "", errors.New("organization ID not found in context")
	}
	return organizationID, nil
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}

// RequestIDMiddleware assigns each request a unique id, honoring an
// existing X-Request-ID header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserMiddleware sets user ID in the request context
// Replace this with your actual user authentication logic
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OrganizationResolver looks up the Zoho organization linked to a user when
// the stored record does not carry one.
type OrganizationResolver interface {
	GetOrganization(ctx context.Context, userID string) (string, error)
}

// ZohoAuthMiddleware ensures the request has a connected Zoho integration
// and a resolvable organization id.
func ZohoAuthMiddleware(service *Service, resolver OrganizationResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			record, err := service.Status(userID)
			if err != nil || record == nil || !record.IsConnected {
				http.Error(w, "Zoho Books authentication required", http.StatusUnauthorized)
				return
			}

			organizationID := record.OrganizationID
			if organizationID == "" {
				organizationID, err = resolver.GetOrganization(r.Context(), userID)
				if err != nil {
					http.Error(w, "Zoho Books organization not connected", http.StatusUnauthorized)
					return
				}
			}

			ctx := context.WithValue(r.Context(), OrganizationIDKey, organizationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
