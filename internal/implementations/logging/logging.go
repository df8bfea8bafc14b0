package logging

import (
	"context"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	"go.uber.org/zap"
)

// ZapLogger adapts a sugared zap production logger to the domain Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func NewZapLogger() *ZapLogger {
	logger, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic("Could not create Zap logger.")
	}
	return &ZapLogger{sugar: logger.Sugar()}
}

func (l *ZapLogger) Sync() {
	l.sugar.Sync()
}

func kvPairs(entries []logging.LogEntry) []interface{} {
	args := make([]interface{}, 0, len(entries)*2)
	for _, entry := range entries {
		args = append(args, entry.Key, entry.Value)
	}
	return args
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Debugw(msg, kvPairs(entries)...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Infow(msg, kvPairs(entries)...)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Warnw(msg, kvPairs(entries)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Errorw(msg, kvPairs(entries)...)
}
