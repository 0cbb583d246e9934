package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/pipekit/handle"
)

// RecoveryConfig configures the recovery middleware.
type RecoveryConfig[C, O any] struct {
	// Skip defines a function to skip middleware execution for specific calls
	Skip func(cx *C) bool
	// Logger receives the panic record with a stack trace (default: slog.Default())
	Logger *slog.Logger
	// OnPanic maps a recovered panic value to the pipeline outcome.
	// When nil, the panic is logged and re-raised.
	OnPanic func(recovered any) O
}

// Recovery creates a recovery middleware that converts panics from handlers
// below it into an application outcome. Panics propagate up the chain frame
// by frame, so a single Recovery handler near the top catches them all.
func Recovery[C, O any](next Next[C, O], onPanic func(recovered any) O) handle.Handler[C, O] {
	return RecoveryWithConfig(next, RecoveryConfig[C, O]{OnPanic: onPanic})
}

// RecoveryWithConfig creates a recovery middleware with custom configuration.
func RecoveryWithConfig[C, O any](next Next[C, O], cfg RecoveryConfig[C, O]) handle.Handler[C, O] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return handle.Func[C, O](func(cx *C) (out O) {
		if cfg.Skip != nil && cfg.Skip(cx) {
			return next(cx).Await()
		}

		defer func() {
			if r := recover(); r != nil {
				cfg.Logger.LogAttrs(context.Background(), slog.LevelError, "panic recovered",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
				if cfg.OnPanic == nil {
					panic(r)
				}
				out = cfg.OnPanic(r)
			}
		}()

		return next(cx).Await()
	})
}
