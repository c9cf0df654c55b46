// Package context carries per-request values between echo handlers and the
// context.Context seen by usecases and stores.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed on every request.
const HeaderXRequestID = "X-Request-Id"

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keyUserID    key = "user_id"
)

// SetRequestID stores the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestID returns the request ID set by the middleware, or a fresh one
// for responses written before it ran.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetUserID records the session owner resolved by the session middleware.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(keyUserID), userID)
}

// GetUserID returns the session owner, false on routes without a session.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(keyUserID)).(string)

	return id, ok && id != ""
}
