// Package device identifies the calling device. The app generates a
// stable random ID on first launch and sends it with every request;
// favorites, the rated-guard, and preferences are scoped by it. This is
// identity for bookkeeping, not authentication.
package device

import (
	"context"
	"net/http"
	"strings"
)

// Header is the request header carrying the device ID.
const Header = "X-Device-Id"

type deviceIDContextKey struct{}

var deviceIDContextKeyInstance = deviceIDContextKey{}

// Middleware stores the device ID header on the request context.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(Header)); id != "" {
				ctx := context.WithValue(r.Context(), deviceIDContextKeyInstance, id)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewContext returns a context carrying the device ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deviceIDContextKeyInstance, id)
}

// FromContext returns the device ID, or empty when the request did not
// carry one. Handlers that touch device state reject requests without it.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(deviceIDContextKeyInstance).(string); ok {
		return id
	}
	return ""
}
