package ctxdata

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type userIDKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	userIDKeyInstance  = userIDKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKeyInstance, userID)
}

// GetUserID returns the authenticated caller set by the auth middleware.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(userIDKeyInstance)
	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
