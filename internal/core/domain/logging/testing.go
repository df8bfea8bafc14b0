package logging

import (
	"context"
	"sync"
)

const (
	DEBUG   = "debug"
	INFO    = "info"
	WARNING = "warning"
	ERROR   = "error"
)

type FakeLoggerRecord struct {
	Level   string
	Msg     string
	Entries []LogEntry
}

// FakeLogger records everything logged so tests can assert on it.
type FakeLogger struct {
	Logged []FakeLoggerRecord
	lock   sync.RWMutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(DEBUG, msg, entries...)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(INFO, msg, entries...)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(WARNING, msg, entries...)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ERROR, msg, entries...)
}

func (l *FakeLogger) log(level string, msg string, entries ...LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Logged = append(l.Logged, FakeLoggerRecord{
		Level:   level,
		Msg:     msg,
		Entries: entries,
	})
}

func (l *FakeLogger) LoggedCount(level string) int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	count := 0
	for _, record := range l.Logged {
		if record.Level == level {
			count++
		}
	}
	return count
}
