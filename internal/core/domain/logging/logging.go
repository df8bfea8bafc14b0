package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

// Entry is a shorthand for building a structured log entry.
func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

// Logger is the structured logger used across services and adapters.
type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Error logs an unexpected error with no extra context.
func Error(ctx context.Context, log Logger, err error) {
	log.Error(ctx, "Unexpected error.", Entry("err", err))
}
