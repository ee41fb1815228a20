// Package requesttime captures one "now" per request so every timestamp a
// workflow writes (request dates, issue/expiry dates, notification times)
// agrees within that request.
package requesttime

import (
	"net/http"
	"time"

	"ims/pkg/requestcontext"
)

// Middleware stores the request start time (UTC) in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
