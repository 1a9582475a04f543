package ratelimit

import (
	"context"
	"net/http"
	"strings"
)

// Store counts requests per client key over a rolling window. Backing
// storage is pluggable: in-memory for single-process deployments, Redis
// when the limit has to be shared across processes. Limiting is
// best-effort; a store error must not take the API down.
type Store interface {
	// Allow records one hit for key and reports whether it is still
	// within budget for the current window.
	Allow(ctx context.Context, key string) (bool, error)
}

// ClientIP extracts the client address the way the original deployment
// did: first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		return host[:i]
	}
	if host == "" {
		return "unknown"
	}
	return host
}
