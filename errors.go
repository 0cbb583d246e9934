package handle

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future is still
	// pending after the timeout elapses.
	ErrTimeout = errors.New("handle: await timed out")

	// ErrNoFutures is returned by AwaitAny when called with no futures.
	ErrNoFutures = errors.New("handle: no futures to await")
)
