package middleware

import (
	"github.com/google/uuid"

	"github.com/pipekit/handle"
)

// CallIDConfig configures the call ID middleware.
type CallIDConfig[C any] struct {
	// Skip defines a function to skip middleware execution for specific calls
	Skip func(cx *C) bool
	// Generator creates new call IDs (default: UUID v4)
	Generator func() string
	// Assign stores the generated ID on the context
	Assign func(cx *C, id string)
}

// CallID creates a call ID middleware with default configuration.
// It assigns a unique identifier to each dispatch pass for tracing and log
// correlation, stored on the context through the assign function.
func CallID[C, O any](next Next[C, O], assign func(cx *C, id string)) handle.Handler[C, O] {
	return CallIDWithConfig(next, CallIDConfig[C]{Assign: assign})
}

// CallIDWithConfig creates a call ID middleware with custom configuration.
func CallIDWithConfig[C, O any](next Next[C, O], cfg CallIDConfig[C]) handle.Handler[C, O] {
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return handle.Func[C, O](func(cx *C) O {
		if cfg.Skip != nil && cfg.Skip(cx) {
			return next(cx).Await()
		}

		if cfg.Assign != nil {
			cfg.Assign(cx, cfg.Generator())
		}

		return next(cx).Await()
	})
}
