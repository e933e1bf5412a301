// Package context carries request-scoped values between delivery, usecase and infra layers:
// the request ID and its logger on context.Context, and the authenticated account on echo.Context.
package context

import (
	"context"
	"log/slog"

	"authgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request ID is read from and echoed back on.
const HeaderXRequestID = "X-Request-Id"

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// accountKey is the echo.Context key set by the auth middleware.
const accountKey = "account"

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "" when there is none.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the request-scoped logger carried by ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetAccount records the authenticated account for the rest of the request.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(accountKey, account)
}

// AccountFrom returns the account recorded by SetAccount.
func AccountFrom(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(accountKey).(*entity.Account)

	return account, ok && account != nil
}
