package services

import (
	"context"
	"log/slog"

	"github.com/agencypulse/backend/internal/middleware"
)

// dateLayout is the calendar-day format used across the ledger.
const dateLayout = "2006-01-02"

// burnWindowDays is the trailing window fixed costs are summed over,
// normalized to a 30-day month.
const burnWindowDays = 30

// BaseService provides the shared logging helpers for all services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context, or the default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
