package handle

// Order selects which end of the collection Next removes handlers from.
// The removal order of a chain is an explicit, tested parameter rather than
// an accidental property of a particular collection's pop semantics.
type Order int

const (
	// LIFO removes from the end: the last handler registered runs first.
	// This is the reference stack-like dispatch order.
	LIFO Order = iota

	// FIFO removes from the front: handlers run in registration order.
	FIFO
)

// Chain is the reference continuation: an ordered collection of handlers
// dispatched by popping exactly one per Next call.
//
// The chain itself is external scaffolding around the Handler capability:
// applications typically embed a *Chain in their context type and expose it
// as a Next method, which is how handlers reach the rest of the pipeline:
//
//	type Ctx struct {
//		Value int
//		chain *handle.Chain[Ctx, error]
//	}
//
//	func (cx *Ctx) Next() *handle.Future[error] { return cx.chain.Next(cx) }
//
// A Chain is consumed as it dispatches. To reuse the same logical chain
// across repeated passes, give each pass its own Clone; handler instances are
// shared between clones, never reconstructed.
//
// A Chain is not safe for concurrent use. Exactly one frame of one call chain
// may call Next at a time, which holds by construction as long as every frame
// awaits its continuation before touching the context again.
type Chain[C, O any] struct {
	handlers []Handler[C, O]
	order    Order
	terminal func(cx *C) O
}

// New creates a chain with the given options.
func New[C, O any](opts ...Option[C, O]) *Chain[C, O] {
	c := &Chain[C, O]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Use appends handlers to the chain.
func (c *Chain[C, O]) Use(handlers ...Handler[C, O]) {
	c.handlers = append(c.handlers, handlers...)
}

// Len reports how many handlers remain undispatched.
func (c *Chain[C, O]) Len() int {
	return len(c.handlers)
}

// Clone returns an independent chain sharing the same handler instances.
// Dispatching the clone leaves the original untouched.
func (c *Chain[C, O]) Clone() *Chain[C, O] {
	dup := *c
	dup.handlers = append([]Handler[C, O](nil), c.handlers...)
	return &dup
}

// Next removes exactly one handler from the chain and invokes it with cx.
// On an empty chain it resolves with the terminal outcome: the zero value of
// O unless WithTerminal configured otherwise.
//
// A handler that returns without calling Next short-circuits the chain; the
// remaining handlers are skipped silently. That is a feature, not an error:
// "handled it" means nobody below needs to run.
func (c *Chain[C, O]) Next(cx *C) *Future[O] {
	if len(c.handlers) == 0 {
		if c.terminal != nil {
			return Go(func() O { return c.terminal(cx) })
		}
		var zero O
		return Resolve(zero)
	}

	var h Handler[C, O]
	if c.order == FIFO {
		h, c.handlers = c.handlers[0], c.handlers[1:]
	} else {
		last := len(c.handlers) - 1
		h, c.handlers = c.handlers[last], c.handlers[:last]
	}
	return h.Call(cx)
}
