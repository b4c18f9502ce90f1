package httpapi

import "context"

type contextKey string

const adminTokenContextKey contextKey = "admin_token"

func withAdminToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, adminTokenContextKey, token)
}

func adminTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(adminTokenContextKey).(string)
	return token, ok && token != ""
}
