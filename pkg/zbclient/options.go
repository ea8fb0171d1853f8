// zbclient/options.go
package zbclient

import (
	"net/url"
	"strconv"
)

// ListOptions are the optional filters shared by every list operation.
// Absent filters are omitted from the query string entirely.
type ListOptions struct {
	Limit  int
	Offset int
	Status string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}
