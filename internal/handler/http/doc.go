// Package http implements the inbound HTTP layer of go-web-kit.
//
// It provides the middleware stack (panic recovery, trailing-slash
// redirects, trace IDs, request logging, signed session cookies, admin
// bearer auth), the scaffold's own routes (version, health, session
// administration), and the proxy-fetch helper handlers use to call
// sibling services. Embedding applications register their routes on the
// chi router returned by [Handler.Init] and inherit the whole stack.
package http
