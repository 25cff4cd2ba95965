package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

type contextKey string

const (
	emailKey    contextKey = "email"
	tenantIDKey contextKey = "tenant_id"
)

// WithIdentity returns a context carrying the authenticated identity so that
// log lines emitted anywhere below the auth middleware name the caller.
func WithIdentity(ctx context.Context, email, tenantID string) context.Context {
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the authenticated identity when the
// request context has one.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if email, ok := ctx.Value(emailKey).(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	}
	if tenantID, ok := ctx.Value(tenantIDKey).(string); ok && tenantID != "" {
		logger.Entry = logger.Entry.WithField("tenant", tenantID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
