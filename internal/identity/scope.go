package identity

import (
	"context"
	"sync"
)

type scopeKey struct{}

// scope holds the credential for one request and, after the first Resolve,
// its outcome. It lives in the request context and dies with it.
type scope struct {
	token string

	once      sync.Once
	principal Principal
	err       error
}

// WithCredential opens a resolution scope for token. Resolution is lazy; an
// empty token resolves to ErrNoCredential.
func WithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{token: token})
}

// WithPrincipal opens a scope that is already resolved to p. Used for
// in-process callers and tests that have no credential to validate.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	sc := &scope{principal: p}
	sc.once.Do(func() {})
	return context.WithValue(ctx, scopeKey{}, sc)
}

func scopeFrom(ctx context.Context) *scope {
	sc, _ := ctx.Value(scopeKey{}).(*scope)
	return sc
}
