package errors

import (
	"log/slog"

	"github.com/go-drift/motion/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors to the shared logger.
type LogHandler struct {
	// Verbose adds stack traces to the logged records.
	Verbose bool
}

// HandleError logs a MotionError at error level.
func (h *LogHandler) HandleError(err *MotionError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Fastener != "" {
		attrs = append(attrs, slog.String("fastener", err.Fastener))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("motion error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{slog.Any("value", err.Value)}
	if err.Op != "" {
		attrs = append(attrs, slog.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("motion panic", attrs...)
}
