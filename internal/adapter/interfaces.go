package adapter

import (
	"context"
	"net/http"
)

// ProxyClient issues outbound HTTP calls on behalf of an inbound
// request, forwarding a configured allow-list of its headers.
type ProxyClient interface {
	// Fetch performs a GET against path. A relative path is resolved
	// against the inbound request's scheme and host; an absolute URL is
	// used as-is.
	Fetch(ctx context.Context, inbound *http.Request, path string) (*ProxyResponse, error)

	// Do is the general form of Fetch with an explicit method and
	// optional body.
	Do(ctx context.Context, inbound *http.Request, method, path string, body []byte) (*ProxyResponse, error)
}
