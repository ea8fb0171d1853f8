// httpapi/respond.go
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// WriteRaw writes an already-encoded JSON payload.
func WriteRaw(w http.ResponseWriter, status int, data json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		w.Write(data)
	}
}

// WriteError writes a client error as a JSON body, with the HTTP status
// derived from the error taxonomy.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, zbclient.HTTPStatus(err), map[string]string{
		"error": err.Error(),
	})
}

// ParseListOptions reads the optional list filters from query parameters.
// Absent parameters leave the zero value, which the client omits from the
// outbound query string.
func ParseListOptions(r *http.Request) zbclient.ListOptions {
	q := r.URL.Query()
	opts := zbclient.ListOptions{
		Status: q.Get("status"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		opts.Offset = offset
	}
	return opts
}
