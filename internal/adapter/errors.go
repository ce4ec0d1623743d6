package adapter

import "errors"

// Transport-level sentinels returned by [ProxyClient]. HTTP-level
// failures (4xx/5xx from the upstream) are never errors; only a failure
// to complete the exchange is.
var (
	// ErrGatewayTimeout indicates the upstream did not answer within
	// the configured proxy timeout.
	ErrGatewayTimeout = errors.New("proxy fetch timed out")

	// ErrBadGateway indicates the upstream could not be reached or the
	// exchange failed below HTTP.
	ErrBadGateway = errors.New("proxy fetch failed")
)
