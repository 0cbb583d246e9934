package handle

// Option configures a Chain during creation.
type Option[C, O any] func(*Chain[C, O])

// WithOrder sets the dispatch order. The default is LIFO.
func WithOrder[C, O any](order Order) Option[C, O] {
	return func(c *Chain[C, O]) {
		c.order = order
	}
}

// WithTerminal sets the outcome produced when Next is called on an empty
// chain. Without it the terminal outcome is the zero value of O.
func WithTerminal[C, O any](terminal func(cx *C) O) Option[C, O] {
	return func(c *Chain[C, O]) {
		if terminal != nil {
			c.terminal = terminal
		}
	}
}

// WithHandlers registers handlers at creation time, equivalent to Use.
func WithHandlers[C, O any](handlers ...Handler[C, O]) Option[C, O] {
	return func(c *Chain[C, O]) {
		c.handlers = append(c.handlers, handlers...)
	}
}
