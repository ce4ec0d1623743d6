// Package adapter implements the outbound HTTP side of go-web-kit: the
// proxy-fetch client used by request handlers to call sibling services.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/go-resty/resty/v2"
)

// ProxyResponse is the outcome of a proxy fetch. Non-2xx statuses are
// NOT errors: the upstream's status is reported here verbatim and the
// caller decides how to translate it.
type ProxyResponse struct {
	// StatusCode is the upstream HTTP status.
	StatusCode int

	// Header holds the upstream response headers.
	Header http.Header

	// Body is the raw upstream response body.
	Body []byte

	// JSON is the decoded body when the upstream declared
	// application/json and the body parsed; nil otherwise.
	JSON any
}

type proxyClient struct {
	client         *resty.Client
	forwardHeaders []string
}

// NewProxyClient builds a [ProxyClient] from the proxy configuration.
func NewProxyClient(cfg config.Proxy) ProxyClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &proxyClient{
		client:         cli,
		forwardHeaders: cfg.ForwardHeaders,
	}
}

func (p *proxyClient) Fetch(ctx context.Context, inbound *http.Request, path string) (*ProxyResponse, error) {
	return p.Do(ctx, inbound, http.MethodGet, path, nil)
}

func (p *proxyClient) Do(ctx context.Context, inbound *http.Request, method, path string, body []byte) (*ProxyResponse, error) {
	target := resolveTarget(inbound, path)

	req := p.client.R().SetContext(ctx)
	for _, name := range p.forwardHeaders {
		if v := inbound.Header.Get(name); v != "" {
			req.SetHeader(name, v)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		return nil, mapTransportError(target, err)
	}

	out := &ProxyResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}

	// A body that fails to parse leaves JSON nil; the upstream already
	// answered, so a decode problem is the caller's concern, not a
	// transport failure.
	if strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		var decoded any
		if jsonErr := json.Unmarshal(resp.Body(), &decoded); jsonErr == nil {
			out.JSON = decoded
		}
	}

	return out, nil
}

// resolveTarget turns path into an absolute URL. Relative paths are
// resolved against the inbound request the way the browser saw it:
// same host, same scheme.
func resolveTarget(inbound *http.Request, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	scheme := "http"
	if inbound.TLS != nil {
		scheme = "https"
	}
	if forwarded := inbound.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return scheme + "://" + inbound.Host + path
}

// mapTransportError classifies a resty transport failure into the
// gateway sentinels, preserving the original error in the chain.
func mapTransportError(target string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: fetching %s: %v", ErrGatewayTimeout, target, err)
	}

	return fmt.Errorf("%w: fetching %s: %v", ErrBadGateway, target, err)
}
