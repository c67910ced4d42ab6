package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const (
	// RequestIDKey carries the per-request id set by the RequestID middleware.
	RequestIDKey ctxKey = "request_id"
	// UserIDKey carries the authenticated user's id once auth has run.
	UserIDKey ctxKey = "user_id"
)

// WithRequestID returns a context annotated with the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithUserID returns a context annotated with the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// FromContext returns the logger enriched with whatever request metadata
// the context carries.
func FromContext(ctx context.Context) *slog.Logger {
	l := L()
	if ctx == nil {
		return l
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		l = l.With("request_id", requestID)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		l = l.With("user_id", userID)
	}
	return l
}

func CtxDebug(ctx context.Context, msg string, args ...any) { FromContext(ctx).Debug(msg, args...) }
func CtxInfo(ctx context.Context, msg string, args ...any)  { FromContext(ctx).Info(msg, args...) }
func CtxWarn(ctx context.Context, msg string, args ...any)  { FromContext(ctx).Warn(msg, args...) }
func CtxError(ctx context.Context, msg string, args ...any) { FromContext(ctx).Error(msg, args...) }
