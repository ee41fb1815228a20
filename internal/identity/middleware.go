package identity

import (
	"log/slog"
	"net/http"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/middleware/auth"
)

// Middleware opens a resolution scope carrying the request's credential.
// Nothing is validated until a handler or RequireRole resolves it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithCredential(r.Context(), auth.TokenFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole resolves the principal and rejects requests whose role is not
// in roles. An empty roles list only requires authentication.
func RequireRole(resolver *Resolver, logger *slog.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			p, err := resolver.Resolve(ctx)
			if err != nil {
				auth.WriteError(w, dErrors.CodeOf(err), dErrors.MessageOf(err))
				return
			}
			if len(roles) > 0 && !p.HasRole(roles...) {
				logger.WarnContext(ctx, "forbidden - role not allowed",
					"role", p.Role,
					"path", r.URL.Path,
				)
				auth.WriteError(w, dErrors.CodeForbidden, "role not allowed for this resource")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
