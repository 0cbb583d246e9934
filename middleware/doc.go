// Package middleware provides ready-made pipeline handlers for common
// cross-cutting concerns: structured logging, panic recovery, per-pass call
// IDs, and OpenTelemetry tracing.
//
// All constructors follow a consistent pattern:
//   - Generic over the application's context type C and outcome type O
//   - A Next accessor supplied by the application, since the continuation
//     lives on the application's own context type
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//
// The Next accessor is typically a one-liner:
//
//	next := func(cx *app.Ctx) *handle.Future[error] { return cx.Next() }
//
//	chain.Use(
//		middleware.Logging[app.Ctx, error](next),
//		middleware.Recovery(next, func(r any) error {
//			return fmt.Errorf("panic: %v", r)
//		}),
//	)
//
// Each middleware handler wraps the continuation in onion style: it runs its
// before phase, awaits the rest of the pipeline through the accessor, then
// runs its after phase and relays the outcome unchanged.
package middleware
