// Package revocation holds the token revocation list backends: in-process,
// Postgres and Redis. All three key entries by token id (jti) and forget an
// entry once the token it revokes would have expired anyway.
package revocation

import (
	"fmt"
	"time"

	"ims/pkg/platform/sentinel"
)

// Clock is injected by tests that need to move past an entry's expiry.
type Clock func() time.Time

// admit reports whether a revoke call has anything to store. Tokens without
// a jti cannot be listed and are skipped.
func admit(jti string, ttl time.Duration) (bool, error) {
	if jti == "" {
		return false, nil
	}
	if ttl <= 0 {
		return false, fmt.Errorf("revocation ttl %s: %w", ttl, sentinel.ErrInvalidState)
	}
	return true, nil
}
