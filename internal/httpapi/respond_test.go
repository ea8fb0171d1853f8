package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerbeam/zbserver/internal/auth"
	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

func TestParseListOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want zbclient.ListOptions
	}{
		{"empty", "/expenses", zbclient.ListOptions{}},
		{"all set", "/expenses?limit=10&offset=5&status=unbilled", zbclient.ListOptions{Limit: 10, Offset: 5, Status: "unbilled"}},
		{"garbage limit ignored", "/expenses?limit=abc", zbclient.ListOptions{}},
		{"negative ignored", "/expenses?limit=-3&offset=-1", zbclient.ListOptions{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			require.Equal(t, tt.want, ParseListOptions(r))
		})
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"integration not found", auth.ErrIntegrationNotFound, http.StatusUnauthorized},
		{"no expense account", zbclient.ErrNoExpenseAccount, http.StatusBadRequest},
		{"api error keeps status", &zbclient.APIError{Status: 403, Message: "denied"}, http.StatusForbidden},
		{"dispatch error", &zbclient.DispatchError{Err: errors.New("down")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			WriteError(w, tt.err)
			require.Equal(t, tt.wantStatus, w.Code)
			require.Contains(t, w.Body.String(), "error")
		})
	}
}
