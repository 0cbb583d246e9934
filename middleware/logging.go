package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/pipekit/handle"
)

// LoggingConfig configures the logging middleware.
type LoggingConfig[C any] struct {
	// Skip defines a function to skip middleware execution for specific calls
	Skip func(cx *C) bool
	// Logger receives the enter/exit records (default: slog.Default())
	Logger *slog.Logger
	// Name identifies the pipeline in log records (default: "pipeline")
	Name string
	// Attrs extracts extra log attributes from the context
	Attrs func(cx *C) []slog.Attr
}

// Logging creates a logging middleware with default configuration.
// It logs one record when the handler enters and one when the rest of the
// pipeline has completed, including the elapsed duration.
func Logging[C, O any](next Next[C, O]) handle.Handler[C, O] {
	return LoggingWithConfig(next, LoggingConfig[C]{})
}

// LoggingWithConfig creates a logging middleware with custom configuration.
func LoggingWithConfig[C, O any](next Next[C, O], cfg LoggingConfig[C]) handle.Handler[C, O] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "pipeline"
	}

	return handle.Func[C, O](func(cx *C) O {
		if cfg.Skip != nil && cfg.Skip(cx) {
			return next(cx).Await()
		}

		attrs := []slog.Attr{slog.String("pipeline", cfg.Name)}
		if cfg.Attrs != nil {
			attrs = append(attrs, cfg.Attrs(cx)...)
		}

		start := time.Now()
		cfg.Logger.LogAttrs(context.Background(), slog.LevelInfo, "pipeline call started", attrs...)

		out := next(cx).Await()

		attrs = append(attrs, slog.Duration("duration", time.Since(start)))
		cfg.Logger.LogAttrs(context.Background(), slog.LevelInfo, "pipeline call completed", attrs...)

		return out
	})
}
