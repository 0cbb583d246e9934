package handle

import "time"

// Future represents the eventual outcome of one handler invocation. It is the
// uniform, runtime-polymorphic handle returned by Handler.Call: whatever
// concrete implementation produced it, the consumer awaits it the same way.
//
// A Future completes exactly once and may be awaited any number of times.
type Future[O any] struct {
	value    O
	panicked any
	done     chan struct{}
}

// Go runs fn on a fresh goroutine and returns a Future completed with its
// result. A panic inside fn is captured and re-raised on the goroutine that
// awaits the future, so panics unwind the call chain frame by frame instead
// of crashing the process from a detached goroutine.
func Go[O any](fn func() O) *Future[O] {
	f := &Future[O]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.panicked = r
			}
		}()
		f.value = fn()
	}()

	return f
}

// Resolve returns an already-completed future. Continuations use it for the
// terminal outcome of an empty chain.
func Resolve[O any](v O) *Future[O] {
	f := &Future[O]{value: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the future completes and returns its outcome.
// If the producing goroutine panicked, Await re-raises that panic here.
func (f *Future[O]) Await() O {
	<-f.done
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.value
}

// AwaitWithTimeout waits for completion up to the given duration.
// Returns ErrTimeout if the future is still pending when the timeout fires;
// the producing goroutine keeps running and the future can still be awaited
// later.
func (f *Future[O]) AwaitWithTimeout(timeout time.Duration) (O, error) {
	select {
	case <-f.done:
		return f.Await(), nil
	case <-time.After(timeout):
		var zero O
		return zero, ErrTimeout
	}
}

// IsComplete checks whether the future has completed without blocking.
func (f *Future[O]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// AwaitAll waits for every future and returns their outcomes in argument
// order. Useful for driving independent call chains concurrently.
func AwaitAll[O any](futures ...*Future[O]) []O {
	outcomes := make([]O, len(futures))
	for i, f := range futures {
		outcomes[i] = f.Await()
	}
	return outcomes
}

// AwaitAny waits for any future to complete and returns its index and
// outcome. Returns ErrNoFutures when called with no futures.
// Note: this spawns one goroutine per future; all of them complete naturally
// when their respective futures finish.
func AwaitAny[O any](futures ...*Future[O]) (int, O, error) {
	if len(futures) == 0 {
		var zero O
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index   int
		outcome O
	}
	done := make(chan completion, 1)

	for i, f := range futures {
		go func(index int, f *Future[O]) {
			out := f.Await()
			select {
			case done <- completion{index, out}:
			default:
				// Another future already won the race.
			}
		}(i, f)
	}

	res := <-done
	return res.index, res.outcome, nil
}
