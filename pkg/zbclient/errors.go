// zbclient/errors.go
package zbclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ledgerbeam/zbserver/internal/auth"
)

// ErrNoExpenseAccount indicates expense creation was attempted with no
// account specified and no expense-type account configured upstream.
var ErrNoExpenseAccount = errors.New("no expense account configured in Zoho Books")

// DispatchError indicates the remote function boundary was unreachable or
// returned a malformed envelope. It is distinct from an API-level failure.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// APIError is an upstream Zoho Books failure, carrying the HTTP status the
// API reported and a human-readable message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// structuredError is the shape Zoho embeds when the envelope's error string
// is itself serialized JSON.
type structuredError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// upstreamMessage unpacks a possibly-serialized structured error, preferring
// its embedded message and falling back to the raw string.
func upstreamMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var se structuredError
		if err := json.Unmarshal([]byte(trimmed), &se); err == nil && se.Message != "" {
			return se.Message
		}
	}
	return raw
}

// newAPIError maps an upstream status code to a domain error message.
func newAPIError(status int, rawError string) *APIError {
	message := upstreamMessage(rawError)

	switch status {
	case http.StatusForbidden:
		message = "permission denied: the record may be linked to active transactions"
	case http.StatusNotFound:
		message = "not found: the record may have already been deleted"
	case http.StatusBadRequest:
		message = "invalid request: please review the submitted data"
	case http.StatusUnauthorized:
		message = "authorization failed: please reconnect your Zoho Books account"
	default:
		if message == "" {
			message = "Zoho Books API request failed"
		}
	}

	return &APIError{Status: status, Message: message}
}

// HTTPStatus maps a client error to the status code the HTTP surface should
// report for it.
func HTTPStatus(err error) int {
	var apiErr *APIError
	switch {
	case errors.Is(err, auth.ErrIntegrationNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNoExpenseAccount):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		if apiErr.Status >= 400 && apiErr.Status < 600 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	case errors.As(err, new(*DispatchError)):
		return http.StatusBadGateway
	case errors.As(err, new(*auth.RefreshError)):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
