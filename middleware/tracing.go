package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pipekit/handle"
)

// tracerName identifies this instrumentation library in exported spans.
const tracerName = "github.com/pipekit/handle/middleware"

// TracingConfig configures the tracing middleware.
type TracingConfig[C, O any] struct {
	// Skip defines a function to skip middleware execution for specific calls
	Skip func(cx *C) bool
	// Tracer starts the spans (default: otel.Tracer(tracerName))
	Tracer trace.Tracer
	// SpanName names the span (default: "pipeline.dispatch")
	SpanName string
	// Context extracts a parent context from the pipeline context, so spans
	// nest under the application's trace (default: context.Background())
	Context func(cx *C) context.Context
	// Attributes extracts span attributes from the context at entry
	Attributes func(cx *C) []attribute.KeyValue
	// OnOutcome records the outcome on the span before it ends, e.g. setting
	// span status from an error
	OnOutcome func(span trace.Span, out O)
}

// Tracing creates a tracing middleware with default configuration.
// It wraps the rest of the pipeline in an OpenTelemetry span.
func Tracing[C, O any](next Next[C, O]) handle.Handler[C, O] {
	return TracingWithConfig(next, TracingConfig[C, O]{})
}

// TracingWithConfig creates a tracing middleware with custom configuration.
func TracingWithConfig[C, O any](next Next[C, O], cfg TracingConfig[C, O]) handle.Handler[C, O] {
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	if cfg.SpanName == "" {
		cfg.SpanName = "pipeline.dispatch"
	}

	return handle.Func[C, O](func(cx *C) O {
		if cfg.Skip != nil && cfg.Skip(cx) {
			return next(cx).Await()
		}

		parent := context.Background()
		if cfg.Context != nil {
			parent = cfg.Context(cx)
		}

		opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
		if cfg.Attributes != nil {
			opts = append(opts, trace.WithAttributes(cfg.Attributes(cx)...))
		}

		_, span := cfg.Tracer.Start(parent, cfg.SpanName, opts...)
		defer span.End()

		out := next(cx).Await()

		if cfg.OnOutcome != nil {
			cfg.OnOutcome(span, out)
		}

		return out
	})
}
