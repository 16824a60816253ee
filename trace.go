package lmp

import (
	"context"
	"log/slog"
)

type traceLoggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger returns a context carrying tlog. Parse reports every
// syntax recovery to this logger at debug level.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nullLogger
	}
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok && tlog != nil {
		return tlog
	}
	return nullLogger
}

// TraceEvent logs a structured debug event to the context's trace logger.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	tlog := getTraceLogFromContext(ctx)
	if !tlog.Enabled(ctx, slog.LevelDebug) {
		return
	}
	tlog.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
