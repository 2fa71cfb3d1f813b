package auth

import "context"

type contextKey struct{}

// WithUser stamps the authenticated user id onto the request context.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserFromContext returns the authenticated user id, or "" when absent.
func UserFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(contextKey{}).(string)
	return userID
}
