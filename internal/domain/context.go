package domain

import "context"

type principalKey struct{}

// ContextPrincipal carries the authenticated identity from the auth
// middleware to the HTTP handlers. Handlers pass it on explicitly; services
// and the policy package never read it from a context themselves.
type ContextPrincipal struct {
	ID       string
	Username string
}

// WithPrincipal stores a ContextPrincipal in the context.
func WithPrincipal(ctx context.Context, p ContextPrincipal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the ContextPrincipal from the context.
func PrincipalFromContext(ctx context.Context) (ContextPrincipal, bool) {
	p, ok := ctx.Value(principalKey{}).(ContextPrincipal)
	return p, ok
}
