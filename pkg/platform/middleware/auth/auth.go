// Package auth holds credential transport mechanics: where a bearer credential
// is read from and how an unauthenticated request is answered.
package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

// CookieName is the cookie browser clients carry the credential in.
const CookieName = "jwt"

const bearerPrefix = "Bearer "

// TokenFromRequest returns the bearer token from the Authorization header,
// falling back to the jwt cookie. Returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix); ok {
		if token := strings.TrimSpace(after); token != "" {
			return token
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// WriteError answers with the standard failure envelope and the status for code.
func WriteError(w http.ResponseWriter, code dErrors.Code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(result.Envelope{
		IsSuccess: false,
		Message:   message,
		Error:     string(code),
	})
}
