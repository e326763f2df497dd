package context

import (
	"context"

	"github.com/muhammadheryan/heart2help/constant"
)

// GetUserID returns the authenticated user id, if any.
func GetUserID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(constant.UserIDKey).(uint64)
	return id, ok && id > 0
}

func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetRequestID returns the correlation id set by the logging middleware, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}
