package handle

// Handler is the capability a value must satisfy to act as one pipeline step.
//
// Call borrows cx exclusively for the duration of one invocation and returns
// a Future the caller awaits. The returned Future is a uniform handle, so
// collections of heterogeneous handler implementations (plain functions,
// closures, stateful structs) can be stored and invoked through one
// interface.
//
// Handlers must not mutate their own state through Call: any internal state
// is established before registration, which is what makes a single handler
// instance safe to share between concurrently executing chains. Mutating the
// context is the whole point, but exactly one frame may touch it at a time.
// Each frame blocks awaiting the inner future, so exclusivity holds as long
// as handlers only reach the context through the pointer they were handed.
type Handler[C, O any] interface {
	Call(cx *C) *Future[O]
}

// Func adapts a plain function or closure to the Handler interface, so the
// common case needs no hand-written implementation.
//
// The function body runs on the goroutine backing the returned Future. It may
// block, invoke the continuation exposed by the application's context, and
// run wrap-around code after the continuation completes:
//
//	chain.Use(handle.Func[Ctx, error](func(cx *Ctx) error {
//		cx.Depth++
//		err := cx.Next().Await()
//		cx.Depth--
//		return err
//	}))
//
// Invoking an adapted function through Call behaves identically to invoking
// it directly; the outcome is relayed unchanged.
type Func[C, O any] func(cx *C) O

// Call satisfies Handler by running f on a fresh goroutine.
func (f Func[C, O]) Call(cx *C) *Future[O] {
	return Go(func() O { return f(cx) })
}
