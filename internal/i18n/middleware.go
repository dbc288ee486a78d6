// Package i18n resolves the request language. The app supports a small
// open set of language codes; "en" is the fallback when the client sends
// nothing usable.
package i18n

import (
	"context"
	"net/http"
	"strings"
)

// DefaultLanguage is used when the request carries no language.
const DefaultLanguage = "en"

type userLanguageContextKey struct{}

var userLanguageContextKeyInstance = userLanguageContextKey{}

// Middleware stores the first Accept-Language entry, reduced to its base
// code ("tr-TR" becomes "tr"), on the request context.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			lng := r.Header.Get("Accept-Language")
			lng, _, _ = strings.Cut(lng, ",")
			lng, _, _ = strings.Cut(strings.TrimSpace(lng), "-")
			lng = strings.ToLower(lng)

			if lng != "" && lng != "*" {
				ctx = context.WithValue(ctx, userLanguageContextKeyInstance, lng)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserLanguage returns the request language, or DefaultLanguage when the
// request did not carry one.
func UserLanguage(ctx context.Context) string {
	if lng, ok := ctx.Value(userLanguageContextKeyInstance).(string); ok {
		return lng
	}
	return DefaultLanguage
}
