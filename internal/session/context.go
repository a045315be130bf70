// Package session carries the request's auth state: the bearer token loaded
// once per request by the session middleware and read by the API client when
// it injects the Authorization header.
package session

import "context"

type ctxKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// Token reports the bearer token attached to the request, if any. Its
// presence is the only signal used to branch between the guest and member
// paths; the token is never validated here.
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
