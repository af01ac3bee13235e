package middleware

import "context"

// userIDKey stores the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
