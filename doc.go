// Package handle provides the capability contract for asynchronous,
// composable processing pipelines over a shared, mutable context: the
// pattern behind request/response middleware chains.
//
// The package is deliberately small: a Handler interface, a Func adapter for
// plain functions, a Future as the uniform asynchronous outcome handle, and a
// reference Chain continuation. It prescribes no result type, no routing, and
// no host application; those belong to the consumer.
//
// # Handler Capability
//
// A Handler over a context type C and outcome type O exposes one operation:
//
//	Call(cx *C) *Future[O]
//
// Returning a *Future rather than the outcome itself is what makes the
// capability uniform: functions, closures, and stateful structs all dispatch
// through the same handle, so one collection can hold them all. Any concrete
// implementation works underneath, at the cost of one goroutine and one
// allocation per call.
//
// # Onion Execution
//
// A driver invokes the outermost handler with a pointer to the shared
// context. The handler runs until it invokes the continuation (exposed by
// the application's context, typically backed by a Chain), then resumes
// after the continuation completes and returns its outcome upward:
//
//	func logged(cx *Ctx) error {
//		cx.Value++           // before: runs outside-in
//		err := cx.Next().Await()
//		cx.Value--           // after: runs inside-out
//		return err
//	}
//
// Code before the continuation runs outside-in, code after runs inside-out.
// A handler that never calls the continuation short-circuits the chain and
// the remaining handlers are skipped silently. That is a design feature, not
// an error.
//
// # Ordering
//
// Which handler the continuation selects depends entirely on registration
// order and the chain's Order parameter. LIFO (the reference default) pops
// from the end, so the last handler registered runs first; FIFO pops from the
// front. The order is explicit so it cannot become an accidental property of
// a particular collection's removal semantics.
//
// # Reuse
//
// Dispatching consumes the chain. Chain.Clone duplicates the collection
// cheaply (handler references, not handler state), so the same logical chain
// serves repeated passes without reconstructing handler instances.
//
// # Concurrency and Cancellation
//
// One call chain executes as strictly sequential nesting: each frame blocks
// awaiting the inner future, so exactly one goroutine touches the context at
// any instant. No internal locking exists because exclusivity is a contract,
// not a lock: handlers reach the context only through the pointer handed to
// them, and never invoke the continuation twice concurrently.
//
// Handler instances themselves are read-only after registration and may be
// shared by any number of concurrently executing chains, each with its own
// context.
//
// The core defines no cancellation primitive. Abandoning a Future does not
// interrupt the goroutines behind it; a chain in flight runs to completion.
// Applications that need cancellation thread a context.Context through their
// own pipeline context and have handlers observe it between steps.
//
// # Known Limitations
//
// A handler can reach the continuation only through the same context pointer
// it was handed. A closure that captured a snapshot of the pipeline, such as
// the chain's length or a copy of the context value, can observe it but
// cannot dispatch the rest of the chain. Such a closure works as a terminal,
// short-circuiting handler and nothing more. This is a sharp edge inherent to
// the borrowing shape of the pattern, documented here rather than papered
// over.
package handle
