// Package adapter is the transport between the whois web service client and
// the RIPE DB REST API.
package adapter

import (
	"context"
	"fmt"
)

// Adapter performs one HTTP request. path is relative to the adapter's base
// URI and may carry a query string. An empty body sends no request body.
// The response body is returned as-is; non-2xx responses yield a
// *StatusError carrying the body.
type Adapter interface {
	Request(ctx context.Context, method, path string, headers map[string]string, body string) (string, error)
}

// BaseURISetter is implemented by adapters whose host can be changed after
// construction.
type BaseURISetter interface {
	SetBaseURI(uri string)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code   int
	Status string
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.URL)
}
