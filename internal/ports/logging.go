package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines the structured logging contract. All log calls take
// key/value pairs, must be safe for concurrent use, and enrich entries with a
// correlation ID when one is present in context. Common fields include:
//   - correlation_id (UUIDv4, generated once per command)
//   - layer (domain|application|infrastructure|presentation)
//   - component (service, loader, browser, etc.)
//   - book_id / criteria / page for catalog transitions
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string. CLI entry-points invoke
// this once per command execution.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

type discardLogger struct{}

func (discardLogger) Debug(context.Context, string, ...interface{}) {}
func (discardLogger) Info(context.Context, string, ...interface{})  {}
func (discardLogger) Warn(context.Context, string, ...interface{})  {}
func (discardLogger) Error(context.Context, string, ...interface{}) {}
func (d discardLogger) With(...interface{}) Logger                  { return d }

// LoggerOrDiscard returns logger, or a logger that drops every entry when
// logger is nil.
func LoggerOrDiscard(logger Logger) Logger {
	if logger == nil {
		return discardLogger{}
	}
	return logger
}
